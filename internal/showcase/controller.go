// Package showcase holds the projects view state machine and the mapping
// from its status to what gets rendered.
//
// A Controller is driven by events: Begin (or one of Mount, ChangeCategory,
// Retry) moves it to InProgress and hands out a Request; the request is
// executed with Fetch, possibly on another goroutine; Resolve applies the
// Result. Only the latest Request can resolve the controller, so a slow
// response for a category the user already left is dropped.
//
// A Controller is not safe for concurrent use. Front ends mutate it from a
// single goroutine (an HTTP handler, or the Bubble Tea update loop).
package showcase

import (
	"context"

	"go.uber.org/zap"

	"dconn.dev/showcase/internal/models"
)

// Fetcher loads the projects of one category
type Fetcher interface {
	FetchProjects(ctx context.Context, category models.CategoryID) ([]models.Project, error)
}

// State is a snapshot of the controller
type State struct {
	Items          []models.Project
	ActiveCategory models.CategoryID
	Status         Status
}

// Request identifies one fetch
type Request struct {
	Token    uint64
	Category models.CategoryID
}

// Result is the outcome of a Request
type Result struct {
	Request Request
	Items   []models.Project
	Err     error
}

// Controller owns the projects view state
type Controller struct {
	fetcher Fetcher
	logger  *zap.Logger

	items    []models.Project
	category models.CategoryID
	status   Status
	latest   uint64
}

// NewController creates a controller in the Initial state with the default
// category selected.
func NewController(fetcher Fetcher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		fetcher:  fetcher,
		logger:   logger,
		category: models.DefaultCategory,
		status:   StatusInitial,
	}
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	return State{
		Items:          c.items,
		ActiveCategory: c.category,
		Status:         c.status,
	}
}

// Mount starts the initial fetch for the default category
func (c *Controller) Mount() Request {
	c.category = models.DefaultCategory
	return c.Begin()
}

// ChangeCategory selects a category and starts a fetch for it
func (c *Controller) ChangeCategory(id models.CategoryID) Request {
	c.category = id
	return c.Begin()
}

// Retry starts a fetch for the active category
func (c *Controller) Retry() Request {
	return c.Begin()
}

// Begin moves to InProgress and issues a new Request for the active
// category. Any Request issued earlier becomes stale.
func (c *Controller) Begin() Request {
	c.latest++
	c.status = StatusInProgress
	req := Request{Token: c.latest, Category: c.category}
	c.logger.Debug("fetch started",
		zap.Uint64("token", req.Token),
		zap.String("category", string(req.Category)))
	return req
}

// Fetch executes req. It does not touch controller state, so it can run
// off the owning goroutine.
func (c *Controller) Fetch(ctx context.Context, req Request) Result {
	items, err := c.fetcher.FetchProjects(ctx, req.Category)
	return Result{Request: req, Items: items, Err: err}
}

// Resolve applies res if it answers the latest Request and reports whether
// it did. On success the items are replaced; on failure they are kept but
// not shown.
func (c *Controller) Resolve(res Result) bool {
	if res.Request.Token != c.latest {
		c.logger.Debug("stale fetch dropped",
			zap.Uint64("token", res.Request.Token),
			zap.Uint64("latest", c.latest))
		return false
	}

	if res.Err != nil {
		c.status = StatusFailure
		c.logger.Warn("fetch failed",
			zap.String("category", string(res.Request.Category)),
			zap.Error(res.Err))
		return true
	}

	items := res.Items
	if items == nil {
		items = []models.Project{}
	}
	c.items = items
	c.status = StatusSuccess
	return true
}

// FetchProjects runs a full fetch cycle for the active category
func (c *Controller) FetchProjects(ctx context.Context) State {
	req := c.Begin()
	c.Resolve(c.Fetch(ctx, req))
	return c.State()
}
