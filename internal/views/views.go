// Package views renders the projects showcase as HTML.
//
// Components are plain templ components; the page drives category changes
// and retries with htmx requests against the fragment route, swapping the
// projects region in place.
package views

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/showcase"
)

const (
	// RegionID is the DOM id of the swapped projects region
	RegionID = "projects"
	// FragmentPath serves the projects region on its own
	FragmentPath = "/projects"

	htmxScript = "https://unpkg.com/htmx.org@2.0.4"
	stylesheet = "/static/css/showcase.css"
	pageTitle  = "Projects Showcase"
)

// FragmentURL returns the region URL for a category
func FragmentURL(category models.CategoryID) string {
	return FragmentPath + "?category=" + url.QueryEscape(string(category))
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Page renders the full document with the projects region
func Page(active models.CategoryID, view showcase.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title><link rel="stylesheet" href="%s"><script src="%s"></script></head><body>`,
			esc(pageTitle), esc(stylesheet), esc(htmxScript)); err != nil {
			return err
		}
		if err := Header().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="app-container">`); err != nil {
			return err
		}
		if err := CategorySelect(active).Render(ctx, w); err != nil {
			return err
		}
		if err := Region(active, view).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Header renders the site header
func Header() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<nav class="header"><img src="%s" alt="website logo" class="website-logo"></nav>`,
			esc(showcase.LogoURL))
		return err
	})
}

// CategorySelect renders the category picker. Without JavaScript the form
// submits to the fragment route, which answers plain requests with a full page.
func CategorySelect(active models.CategoryID) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form method="get" action="%s" class="category-form">`+
			`<select name="category" class="select-input" hx-get="%s" hx-trigger="change" hx-target="#%s" `+
			`hx-swap="outerHTML" hx-sync="this:replace" hx-indicator="#%s" hx-push-url="false">`,
			esc(FragmentPath), esc(FragmentPath), RegionID, RegionID); err != nil {
			return err
		}
		for _, c := range models.Categories() {
			selected := ""
			if c.ID == active {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				esc(string(c.ID)), selected, esc(c.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select><noscript><button type="submit">Show</button></noscript></form>`)
		return err
	})
}

// Region renders the projects region for a view
func Region(category models.CategoryID, view showcase.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		// While loading, the region fetches its own replacement once it lands.
		if _, ok := view.(showcase.LoadingView); ok {
			if _, err := fmt.Fprintf(w, `<section id="%s" class="projects" data-status="loading" `+
				`hx-get="%s" hx-trigger="load" hx-swap="outerHTML">`,
				RegionID, esc(FragmentURL(category))); err != nil {
				return err
			}
			if err := Loader(false).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</section>`)
			return err
		}

		if _, err := fmt.Fprintf(w, `<section id="%s" class="projects" data-status="%s">`,
			RegionID, statusName(view)); err != nil {
			return err
		}
		if err := Loader(true).Render(ctx, w); err != nil {
			return err
		}

		switch v := view.(type) {
		case showcase.EmptyView:
		case showcase.ListView:
			if err := ProjectList(v.Items).Render(ctx, w); err != nil {
				return err
			}
		case showcase.FailureView:
			if err := Failure(category, v).Render(ctx, w); err != nil {
				return err
			}
		default:
			return fmt.Errorf("views: unhandled view %T", view)
		}

		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func statusName(view showcase.View) string {
	switch view.(type) {
	case showcase.EmptyView:
		return "initial"
	case showcase.LoadingView:
		return "loading"
	case showcase.ListView:
		return "success"
	case showcase.FailureView:
		return "failure"
	default:
		return "unknown"
	}
}

// Loader renders the loading indicator. An indicator loader stays hidden
// until htmx marks the region as requesting.
func Loader(indicator bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := "loader-container"
		if indicator {
			class += " htmx-indicator"
		}
		_, err := fmt.Fprintf(w, `<div data-testid="loader" class="%s" role="status" aria-label="loading">`+
			`<span class="dot"></span><span class="dot"></span><span class="dot"></span></div>`, class)
		return err
	})
}

// ProjectList renders the ordered project cards
func ProjectList(items []models.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ul class="project-container">`); err != nil {
			return err
		}
		for _, p := range items {
			if err := ProjectCard(p).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// ProjectCard renders one project
func ProjectCard(p models.Project) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<li class="project-item" data-key="%s">`+
			`<img src="%s" alt="%s" class="project-image"><p class="project-name">%s</p></li>`,
			esc(p.ID), esc(string(templ.URL(p.ImageURL))), esc(p.Name), esc(p.Name))
		return err
	})
}

// Failure renders the error illustration, message and retry control. The
// retry button requests the same category again.
func Failure(category models.CategoryID, v showcase.FailureView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="failure-view">`+
			`<img src="%s" alt="failure view" class="failure-image">`+
			`<h1 class="failure-heading">%s</h1><p class="message">%s</p>`+
			`<button type="button" class="retry-button" hx-get="%s" hx-target="#%s" hx-swap="outerHTML" hx-indicator="#%s">%s</button>`+
			`<noscript><a href="%s">%s</a></noscript></div>`,
			esc(v.Image), esc(v.Heading), esc(v.Message),
			esc(FragmentURL(category)), RegionID, RegionID, esc(v.Retry),
			esc(FragmentURL(category)), esc(v.Retry))
		return err
	})
}
