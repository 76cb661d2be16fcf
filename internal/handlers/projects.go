package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/services"
)

// CatalogHandler serves the catalog stub API
type CatalogHandler struct {
	projectService *services.ProjectService
	fail           bool
}

// NewCatalogHandler creates a new CatalogHandler. When fail is set every
// list request answers 500.
func NewCatalogHandler(ps *services.ProjectService, fail bool) *CatalogHandler {
	return &CatalogHandler{projectService: ps, fail: fail}
}

// ListProjects handles GET /ps/projects?category={id}
func (h *CatalogHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if h.fail {
		respondError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	category := models.CategoryID(r.URL.Query().Get("category"))
	if category == "" {
		category = models.DefaultCategory
	}

	projects, err := h.projectService.List(category)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.RawProjectList{Projects: projects})
}

// GetProject handles GET /ps/projects/{id}
func (h *CatalogHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
