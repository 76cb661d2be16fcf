package showcase

import (
	"fmt"

	"dconn.dev/showcase/internal/models"
)

// Copy and assets shown by the views
const (
	LogoURL        = "https://assets.ccbp.in/frontend/react-js/projects-showcase/website-logo-img.png"
	FailureImage   = "https://assets.ccbp.in/frontend/react-js/projects-showcase/failure-img.png"
	FailureHeading = "Oops! Something Went Wrong"
	FailureMessage = "We cannot seem to find the page you are looking for."
	RetryLabel     = "Retry"
)

// View is what a front end should display. The concrete types are
// EmptyView, LoadingView, ListView and FailureView.
type View interface {
	isView()
}

// EmptyView renders nothing
type EmptyView struct{}

// LoadingView renders a loading indicator
type LoadingView struct{}

// ListView renders one card per project, in order, keyed by project id
type ListView struct {
	Items []models.Project
}

// FailureView renders the error illustration, message and retry control
type FailureView struct {
	Image   string
	Heading string
	Message string
	Retry   string
}

func (EmptyView) isView()   {}
func (LoadingView) isView() {}
func (ListView) isView()    {}
func (FailureView) isView() {}

// Render maps a state to its view
func Render(s State) View {
	switch s.Status {
	case StatusInitial:
		return EmptyView{}
	case StatusInProgress:
		return LoadingView{}
	case StatusSuccess:
		return ListView{Items: s.Items}
	case StatusFailure:
		return FailureView{
			Image:   FailureImage,
			Heading: FailureHeading,
			Message: FailureMessage,
			Retry:   RetryLabel,
		}
	default:
		panic(fmt.Sprintf("showcase: unhandled status %d", s.Status))
	}
}
