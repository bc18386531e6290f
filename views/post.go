package views

import (
	"context"

	"github.com/a-h/templ"
	"github.com/eringen/folio"
	"github.com/eringen/folio/markdown"
)

// Post renders a single post with its document and related posts.
func Post(page folio.PostPage) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		return layout(ctx, h, page.Site, page.Meta, page.JSONLD, func(ctx context.Context, h *html) error {
			p := page.Post
			flash(h, page.Flash)
			h.raw(`<p><a href="/blog/">&larr; Back to all posts</a></p><article><p class="meta">`)
			h.text(p.Category)
			h.raw(" &middot; ")
			h.text(p.Date)
			h.raw(" &middot; ")
			h.text(p.ReadTime)
			h.raw("</p><h1>")
			h.text(p.Title)
			h.raw("</h1>")
			tagPills(h, p.Tags, folio.Selection{})
			h.raw(`<div class="prose">`)
			if err := markdown.RenderMarkdown(&h.Buffer, page.Content); err != nil {
				return err
			}
			h.raw("</div></article>")
			if len(page.Related) > 0 {
				h.raw(`<section class="related"><h2>Related posts</h2>`)
				for _, r := range page.Related {
					postCard(h, r, folio.Selection{})
				}
				h.raw("</section>")
			}
			return nil
		})
	})
}
