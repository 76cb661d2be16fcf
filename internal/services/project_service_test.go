package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/showcase/internal/models"
)

func entry(id, name string, category models.CategoryID) models.CatalogEntry {
	return models.CatalogEntry{
		RawProject: models.RawProject{ID: id, Name: name, ImageURL: name + ".png"},
		Category:   category,
	}
}

func newTestService() *ProjectService {
	return NewProjectService(&models.Catalog{Projects: []models.CatalogEntry{
		entry("1", "Music Page", models.CategoryStatic),
		entry("2", "Tourism Website", models.CategoryResponsive),
		entry("3", "Advanced Technologies", models.CategoryResponsive),
		entry("4", "Todos Application", models.CategoryDynamic),
	}})
}

func names(projects []models.RawProject) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

func TestListAll(t *testing.T) {
	got, err := newTestService().List(models.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"Music Page", "Tourism Website", "Advanced Technologies", "Todos Application"}, names(got))
}

func TestListByCategory(t *testing.T) {
	s := newTestService()

	got, err := s.List(models.CategoryResponsive)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tourism Website", "Advanced Technologies"}, names(got))

	got, err = s.List(models.CategoryReact)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListUnknownCategory(t *testing.T) {
	_, err := newTestService().List("VUE")
	require.Error(t, err)
}

func TestGetByID(t *testing.T) {
	s := newTestService()

	p, err := s.GetByID("4")
	require.NoError(t, err)
	assert.Equal(t, "Todos Application", p.Name)
	assert.Equal(t, models.CategoryDynamic, p.Category)

	_, err = s.GetByID("99")
	require.Error(t, err)
}

func TestNilCatalog(t *testing.T) {
	s := NewProjectService(nil)
	assert.Equal(t, 0, s.Len())

	got, err := s.List(models.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}
