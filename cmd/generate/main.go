package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"dconn.dev/showcase/internal/config"
	"dconn.dev/showcase/internal/fetch"
	"dconn.dev/showcase/internal/models"
)

// projectFetcher is the part of fetch.Client the generator needs
type projectFetcher interface {
	FetchProjects(ctx context.Context, category models.CategoryID) ([]models.Project, error)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       snapshots every category from SHOWCASE_API_BASE_URL into <output-dir>/projects.json")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := fetch.NewClient(cfg.APIBaseURL, fetch.WithTimeout(cfg.FetchTimeout))
	path, count, err := generate(ctx, client, outputDir, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s (%d projects)\n", path, count)
	fmt.Println("Done!")
}

// generate fetches each concrete category and writes the tagged entries as
// the catalog fixture. ALL is skipped since it is the union of the others.
// A category that fails to fetch is reported and left out.
func generate(ctx context.Context, f projectFetcher, outputDir string, log io.Writer) (string, int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	var catalog models.Catalog
	for _, category := range models.Categories() {
		if category.ID == models.CategoryAll {
			continue
		}
		fmt.Fprintf(log, "Fetching %s projects...\n", category.Label)

		projects, err := f.FetchProjects(ctx, category.ID)
		if err != nil {
			fmt.Fprintf(log, "  ERROR: %v\n", err)
			continue
		}

		for _, p := range projects {
			catalog.Projects = append(catalog.Projects, models.CatalogEntry{
				RawProject: models.RawProject{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL},
				Category:   category.ID,
			})
		}
		fmt.Fprintf(log, "  %d projects\n", len(projects))
	}

	if catalog.Projects == nil {
		catalog.Projects = []models.CatalogEntry{}
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("marshaling JSON: %w", err)
	}

	path := filepath.Join(outputDir, config.CatalogFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return path, len(catalog.Projects), nil
}
