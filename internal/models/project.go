package models

// Project is a showcase project as displayed by the views
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// ProjectList wraps the array of normalized projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// RawProject is a project record as served by the projects API
type RawProject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// RawProjectList is the projects API response body
type RawProjectList struct {
	Projects []RawProject `json:"projects"`
}

// Normalize converts an API record into its display form
func (p RawProject) Normalize() Project {
	return Project{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: p.ImageURL,
	}
}

// CatalogEntry is a raw project tagged with the category it belongs to.
// It is the record format of the catalog fixture file.
type CatalogEntry struct {
	RawProject
	Category CategoryID `json:"category"`
}

// Catalog wraps the array of catalog entries
type Catalog struct {
	Projects []CatalogEntry `json:"projects"`
}
