package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dconn.dev/showcase/internal/config"
	"dconn.dev/showcase/internal/fetch"
	"dconn.dev/showcase/internal/middleware"
	"dconn.dev/showcase/internal/services"
	"dconn.dev/showcase/internal/views"
)

// htmxRequestHeader is set by htmx on every request it issues
const htmxRequestHeader = "HX-Request"

// SetupRoutes configures the showcase web routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) http.Handler {
	r := newRouter(logger)

	client := fetch.NewClient(cfg.APIBaseURL,
		fetch.WithTimeout(cfg.FetchTimeout),
		fetch.WithLogger(logger.Named("fetch")))
	showcaseHandler := NewShowcaseHandler(client, logger)

	// Pages
	r.Get("/", showcaseHandler.Page)
	r.Get(views.FragmentPath, showcaseHandler.Fragment)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", showcaseHandler.ListProjects)

		// Health check
		r.Get("/health", health)
	})

	// Static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// SetupCatalogRoutes configures the catalog stub API that mirrors the
// upstream projects endpoint
func SetupCatalogRoutes(cfg *config.Config, projectService *services.ProjectService, logger *zap.Logger) http.Handler {
	r := newRouter(logger)

	catalogHandler := NewCatalogHandler(projectService, cfg.CatalogFail)

	r.Route("/ps", func(r chi.Router) {
		r.Get("/projects", catalogHandler.ListProjects)
		r.Get("/projects/{id}", catalogHandler.GetProject)
	})
	r.Get("/health", health)

	return r
}

func newRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondHTML renders a component as a complete response
func respondHTML(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c).ServeHTTP(w, r)
}
