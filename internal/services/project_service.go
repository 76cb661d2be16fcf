package services

import (
	"fmt"

	"dconn.dev/showcase/internal/models"
)

// ProjectService answers catalog queries over a loaded fixture
type ProjectService struct {
	catalog *models.Catalog
}

// NewProjectService creates a new ProjectService
func NewProjectService(catalog *models.Catalog) *ProjectService {
	if catalog == nil {
		catalog = &models.Catalog{}
	}
	return &ProjectService{catalog: catalog}
}

// List returns the projects of a category in fixture order. ALL returns
// every project.
func (s *ProjectService) List(category models.CategoryID) ([]models.RawProject, error) {
	if _, ok := models.CategoryByID(category); !ok {
		return nil, fmt.Errorf("unknown category: %s", category)
	}

	projects := make([]models.RawProject, 0, len(s.catalog.Projects))
	for _, entry := range s.catalog.Projects {
		if category == models.CategoryAll || entry.Category == category {
			projects = append(projects, entry.RawProject)
		}
	}
	return projects, nil
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.CatalogEntry, error) {
	for i := range s.catalog.Projects {
		if s.catalog.Projects[i].ID == id {
			return &s.catalog.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", id)
}

// Len returns the number of catalog entries
func (s *ProjectService) Len() int {
	return len(s.catalog.Projects)
}
