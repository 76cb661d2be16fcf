package showcase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/showcase/internal/fetch"
	"dconn.dev/showcase/internal/models"
)

// fakeFetcher answers from a per-category table and records every call.
type fakeFetcher struct {
	projects map[models.CategoryID][]models.Project
	err      error
	calls    []models.CategoryID
}

func (f *fakeFetcher) FetchProjects(_ context.Context, category models.CategoryID) ([]models.Project, error) {
	f.calls = append(f.calls, category)
	if f.err != nil {
		return nil, f.err
	}
	return f.projects[category], nil
}

var sample = []models.Project{{ID: "1", Name: "A", ImageURL: "u"}}

func TestMountTransitions(t *testing.T) {
	f := &fakeFetcher{projects: map[models.CategoryID][]models.Project{models.CategoryAll: sample}}
	c := NewController(f, nil)

	assert.Equal(t, StatusInitial, c.State().Status)
	assert.Equal(t, models.CategoryAll, c.State().ActiveCategory)

	req := c.Mount()
	assert.Equal(t, StatusInProgress, c.State().Status)
	assert.Equal(t, models.CategoryAll, req.Category)

	require.True(t, c.Resolve(c.Fetch(context.Background(), req)))
	assert.Equal(t, StatusSuccess, c.State().Status)
	assert.Equal(t, sample, c.State().Items)
	assert.Equal(t, []models.CategoryID{models.CategoryAll}, f.calls)
}

func TestMountFailure(t *testing.T) {
	f := &fakeFetcher{err: fetch.ErrFetchFailed}
	c := NewController(f, nil)

	req := c.Mount()
	require.True(t, c.Resolve(c.Fetch(context.Background(), req)))
	assert.Equal(t, StatusFailure, c.State().Status)
}

func TestChangeCategoryFetchesOncePerCategory(t *testing.T) {
	f := &fakeFetcher{projects: map[models.CategoryID][]models.Project{}}
	c := NewController(f, nil)

	for _, cat := range models.Categories() {
		req := c.ChangeCategory(cat.ID)
		assert.Equal(t, cat.ID, c.State().ActiveCategory)
		assert.Equal(t, cat.ID, req.Category)
		c.Resolve(c.Fetch(context.Background(), req))
	}

	want := make([]models.CategoryID, 0, len(models.Categories()))
	for _, cat := range models.Categories() {
		want = append(want, cat.ID)
	}
	assert.Equal(t, want, f.calls)
}

func TestChangeCategoryFromSuccessGoesThroughInProgress(t *testing.T) {
	react := []models.Project{{ID: "9", Name: "R", ImageURL: "r"}}
	f := &fakeFetcher{projects: map[models.CategoryID][]models.Project{
		models.CategoryAll:   sample,
		models.CategoryReact: react,
	}}
	c := NewController(f, nil)
	c.FetchProjects(context.Background())
	require.Equal(t, StatusSuccess, c.State().Status)

	req := c.ChangeCategory(models.CategoryReact)
	assert.Equal(t, StatusInProgress, c.State().Status)

	c.Resolve(c.Fetch(context.Background(), req))
	assert.Equal(t, StatusSuccess, c.State().Status)
	assert.Equal(t, react, c.State().Items)
}

func TestFailureKeepsPreviousItems(t *testing.T) {
	f := &fakeFetcher{projects: map[models.CategoryID][]models.Project{models.CategoryAll: sample}}
	c := NewController(f, nil)
	c.FetchProjects(context.Background())

	f.err = errors.New("boom")
	st := c.FetchProjects(context.Background())

	assert.Equal(t, StatusFailure, st.Status)
	assert.Equal(t, sample, st.Items)
	assert.IsType(t, FailureView{}, Render(st))
}

func TestRetryReissuesSameRequest(t *testing.T) {
	f := &fakeFetcher{err: fetch.ErrFetchFailed}
	c := NewController(f, nil)
	first := c.ChangeCategory(models.CategoryDynamic)
	c.Resolve(c.Fetch(context.Background(), first))
	require.Equal(t, StatusFailure, c.State().Status)

	f.err = nil
	f.projects = map[models.CategoryID][]models.Project{models.CategoryDynamic: sample}
	req := c.Retry()
	assert.Equal(t, models.CategoryDynamic, req.Category)
	c.Resolve(c.Fetch(context.Background(), req))

	assert.Equal(t, StatusSuccess, c.State().Status)
	assert.Equal(t, []models.CategoryID{models.CategoryDynamic, models.CategoryDynamic}, f.calls)
}

func TestRetryAfterSuccessIsIdempotent(t *testing.T) {
	f := &fakeFetcher{projects: map[models.CategoryID][]models.Project{models.CategoryAll: sample}}
	c := NewController(f, nil)
	first := Render(c.FetchProjects(context.Background()))

	for i := 0; i < 3; i++ {
		req := c.Retry()
		c.Resolve(c.Fetch(context.Background(), req))
		assert.Equal(t, first, Render(c.State()))
	}
}

func TestStaleResultDropped(t *testing.T) {
	f := &fakeFetcher{projects: map[models.CategoryID][]models.Project{
		models.CategoryAll:    sample,
		models.CategoryStatic: {{ID: "2", Name: "S", ImageURL: "s"}},
	}}
	c := NewController(f, nil)

	old := c.Mount()
	current := c.ChangeCategory(models.CategoryStatic)

	// The newer request resolves first, then the old one arrives late.
	require.True(t, c.Resolve(c.Fetch(context.Background(), current)))
	assert.False(t, c.Resolve(c.Fetch(context.Background(), old)))

	st := c.State()
	assert.Equal(t, models.CategoryStatic, st.ActiveCategory)
	assert.Equal(t, StatusSuccess, st.Status)
	assert.Equal(t, "S", st.Items[0].Name)
}

func TestStaleFailureDoesNotOverrideInProgress(t *testing.T) {
	c := NewController(&fakeFetcher{}, nil)
	old := c.Mount()
	c.ChangeCategory(models.CategoryReact)

	assert.False(t, c.Resolve(Result{Request: old, Err: fetch.ErrFetchFailed}))
	assert.Equal(t, StatusInProgress, c.State().Status)
}

func TestEmptyResultIsSuccess(t *testing.T) {
	c := NewController(&fakeFetcher{projects: map[models.CategoryID][]models.Project{}}, nil)
	st := c.FetchProjects(context.Background())

	assert.Equal(t, StatusSuccess, st.Status)
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
}
