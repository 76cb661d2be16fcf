package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/showcase/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, ":8081", cfg.CatalogAddr)
	assert.Equal(t, "https://apis.ccbp.in/ps", cfg.APIBaseURL)
	assert.Equal(t, "data", cfg.DataPath)
	assert.Equal(t, time.Duration(0), cfg.FetchTimeout)
	assert.False(t, cfg.CatalogFail)
	assert.Equal(t, filepath.Join("data", "projects.json"), cfg.CatalogPath())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHOWCASE_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("SHOWCASE_API_BASE_URL", "http://localhost:8081/ps")
	t.Setenv("SHOWCASE_FETCH_TIMEOUT", "3s")
	t.Setenv("SHOWCASE_CATALOG_FAIL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "http://localhost:8081/ps", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.CatalogFail)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("SHOWCASE_FETCH_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadNegativeTimeout(t *testing.T) {
	t.Setenv("SHOWCASE_FETCH_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
}

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), CatalogFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFixture(t, `{"projects":[
		{"id":"1","name":"Music Page","image_url":"m.png","category":"STATIC"},
		{"id":"2","name":"Todos","image_url":"t.png","category":"REACT"}
	]}`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Projects, 2)
	assert.Equal(t, models.CategoryStatic, catalog.Projects[0].Category)
	assert.Equal(t, "Todos", catalog.Projects[1].Name)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	_, err = LoadCatalog(writeFixture(t, `{"projects":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	_, err = LoadCatalog(writeFixture(t, `{"projects":[{"id":"1","name":"x","image_url":"y","category":"ALL"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")

	_, err = LoadCatalog(writeFixture(t, `{"projects":[{"id":"1","name":"x","image_url":"y","category":"VUE"}]}`))
	require.Error(t, err)
}
