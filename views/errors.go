package views

import (
	"context"

	"github.com/a-h/templ"
	"github.com/eringen/folio"
)

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return errorPage("Page not found", "The post or page you were looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return errorPage("Something went wrong", "Please try again in a moment.")
}

func errorPage(title, message string) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		site := folio.SiteConfig{Name: "Blog"}
		return layout(ctx, h, site, folio.PageMeta{Title: title}, "", func(ctx context.Context, h *html) error {
			h.raw("<h1>")
			h.text(title)
			h.raw("</h1><p>")
			h.text(message)
			h.raw(`</p><p><a href="/blog/">Back to all posts</a></p>`)
			return nil
		})
	})
}
