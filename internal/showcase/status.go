package showcase

// Status is the lifecycle stage of the current fetch
type Status int

const (
	StatusInitial Status = iota
	StatusInProgress
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "INITIAL"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}
