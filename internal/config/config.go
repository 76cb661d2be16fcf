package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"dconn.dev/showcase/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr   string        `env:"SHOWCASE_SERVER_ADDR" envDefault:":8080"`
	CatalogAddr  string        `env:"SHOWCASE_CATALOG_ADDR" envDefault:":8081"`
	APIBaseURL   string        `env:"SHOWCASE_API_BASE_URL" envDefault:"https://apis.ccbp.in/ps"`
	DataPath     string        `env:"SHOWCASE_DATA_PATH" envDefault:"data"`
	FetchTimeout time.Duration `env:"SHOWCASE_FETCH_TIMEOUT" envDefault:"0s"`
	CatalogFail  bool          `env:"SHOWCASE_CATALOG_FAIL" envDefault:"false"`
}

// CatalogFile is the fixture file name inside DataPath
const CatalogFile = "projects.json"

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("SHOWCASE_API_BASE_URL must not be empty")
	}
	if cfg.FetchTimeout < 0 {
		return nil, fmt.Errorf("SHOWCASE_FETCH_TIMEOUT must not be negative")
	}
	return &cfg, nil
}

// CatalogPath returns the location of the catalog fixture
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataPath, CatalogFile)
}

// LoadCatalog reads and parses the catalog fixture
func LoadCatalog(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	for i, entry := range catalog.Projects {
		if _, ok := models.CategoryByID(entry.Category); !ok || entry.Category == models.CategoryAll {
			return nil, fmt.Errorf("project %q (entry %d) has invalid category %q", entry.ID, i, entry.Category)
		}
	}

	return &catalog, nil
}
