package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/showcase"
	"dconn.dev/showcase/internal/views"
)

// ShowcaseHandler serves the projects showcase page and its fragments.
// Each request drives its own controller.
type ShowcaseHandler struct {
	fetcher showcase.Fetcher
	logger  *zap.Logger
}

// NewShowcaseHandler creates a new ShowcaseHandler
func NewShowcaseHandler(f showcase.Fetcher, logger *zap.Logger) *ShowcaseHandler {
	return &ShowcaseHandler{fetcher: f, logger: logger}
}

// Page handles GET / - the page mounts in the loading state and the
// region requests its content once the browser has it.
func (h *ShowcaseHandler) Page(w http.ResponseWriter, r *http.Request) {
	category := models.ParseCategory(r.URL.Query().Get("category"))

	ctrl := showcase.NewController(h.fetcher, h.logger)
	ctrl.ChangeCategory(category.ID)

	respondHTML(w, r, views.Page(category.ID, showcase.Render(ctrl.State())))
}

// Fragment handles GET /projects - runs one fetch and renders the result.
// htmx requests get the region only, plain requests the whole page.
func (h *ShowcaseHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	category := models.ParseCategory(r.URL.Query().Get("category"))

	ctrl := showcase.NewController(h.fetcher, h.logger)
	req := ctrl.ChangeCategory(category.ID)
	ctrl.Resolve(ctrl.Fetch(r.Context(), req))
	view := showcase.Render(ctrl.State())

	if isHTMXRequest(r) {
		respondHTML(w, r, views.Region(category.ID, view))
		return
	}
	respondHTML(w, r, views.Page(category.ID, view))
}

// ListProjects handles GET /api/projects?category={id}
func (h *ShowcaseHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	category := models.DefaultCategory
	if raw != "" {
		c, ok := models.CategoryByID(models.CategoryID(raw))
		if !ok {
			respondError(w, http.StatusBadRequest, "unknown category")
			return
		}
		category = c.ID
	}

	ctrl := showcase.NewController(h.fetcher, h.logger)
	req := ctrl.ChangeCategory(category)
	ctrl.Resolve(ctrl.Fetch(r.Context(), req))

	st := ctrl.State()
	switch st.Status {
	case showcase.StatusSuccess:
		respondJSON(w, http.StatusOK, models.ProjectList{Projects: st.Items})
	case showcase.StatusFailure:
		respondError(w, http.StatusBadGateway, "fetch failed")
	default:
		respondError(w, http.StatusInternalServerError, "unexpected status "+st.Status.String())
	}
}
