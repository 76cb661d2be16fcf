package models

// CategoryID identifies a project category on the wire
type CategoryID string

const (
	CategoryAll        CategoryID = "ALL"
	CategoryStatic     CategoryID = "STATIC"
	CategoryResponsive CategoryID = "RESPONSIVE"
	CategoryDynamic    CategoryID = "DYNAMIC"
	CategoryReact      CategoryID = "REACT"
)

// DefaultCategory is selected when a view mounts
const DefaultCategory = CategoryAll

// Category pairs an identifier with its display label
type Category struct {
	ID    CategoryID
	Label string
}

var categories = [...]Category{
	{ID: CategoryAll, Label: "All"},
	{ID: CategoryStatic, Label: "Static"},
	{ID: CategoryResponsive, Label: "Responsive"},
	{ID: CategoryDynamic, Label: "Dynamic"},
	{ID: CategoryReact, Label: "React"},
}

// Categories returns the fixed category set in display order.
// The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryByID looks up a category by identifier
func CategoryByID(id CategoryID) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ParseCategory returns the category for a raw identifier, falling back to
// the default category when raw is empty or unknown.
func ParseCategory(raw string) Category {
	if c, ok := CategoryByID(CategoryID(raw)); ok {
		return c
	}
	c, _ := CategoryByID(DefaultCategory)
	return c
}

// IndexOf returns the display position of id, or -1
func IndexOf(id CategoryID) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (id CategoryID) String() string {
	return string(id)
}
