package views

import (
	"context"

	"github.com/a-h/templ"
	"github.com/eringen/folio"
)

// Compose renders the new-post form, with the validation notice if any.
func Compose(page folio.ComposePage) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		return layout(ctx, h, page.Site, page.Meta, "", func(ctx context.Context, h *html) error {
			d := page.Draft
			h.raw("<h1>New post</h1>")
			if page.Error != nil {
				h.raw(`<div class="notice" role="alert">`)
				h.text(page.Error.Message)
				h.raw("</div>")
			}
			h.raw(`<form class="card" method="post" action="/blog/new/">`)
			h.raw(`<input type="hidden" name="_csrf"`)
			h.attr("value", page.CSRFToken)
			h.raw(">")

			h.raw(`<label for="title">Title</label><input id="title" name="title" required`)
			h.attr("value", d.Title)
			h.raw(">")

			h.raw(`<label for="excerpt">Excerpt</label><textarea id="excerpt" name="excerpt" rows="3" required>`)
			h.text(d.Excerpt)
			h.raw("</textarea>")

			h.raw(`<label for="category">Category</label><select id="category" name="category">`)
			for _, c := range page.Categories {
				h.raw("<option")
				h.attr("value", c)
				if c == d.Category {
					h.raw(" selected")
				}
				h.raw(">")
				h.text(c)
				h.raw("</option>")
			}
			h.raw("</select>")

			h.raw(`<label for="tags">Tags</label><input id="tags" name="tags" placeholder="Go, Docker, Deployment"`)
			h.attr("value", d.Tags)
			h.raw(">")

			h.raw(`<label for="content">Content (markdown)</label><textarea id="content" name="content" rows="14">`)
			h.text(d.Content)
			h.raw("</textarea>")

			h.raw(`<p><button type="submit">Publish</button> <a href="/blog/">Cancel</a></p></form>`)
			return nil
		})
	})
}
