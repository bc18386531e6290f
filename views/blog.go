package views

import (
	"context"

	"github.com/a-h/templ"
	"github.com/eringen/folio"
)

// Blog renders the post listing with its category and tag facets.
func Blog(page folio.BlogPage) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		return layout(ctx, h, page.Site, page.Meta, folio.WebsiteJsonLD(page.Site), func(ctx context.Context, h *html) error {
			flash(h, page.Flash)
			h.raw("<h1>")
			h.text(page.Site.Name)
			h.raw("</h1>")
			if page.Site.Description != "" {
				h.raw(`<p class="meta">`)
				h.text(page.Site.Description)
				h.raw("</p>")
			}
			searchForm(h, page)
			categoryFacets(h, page)
			tagFacets(h, page)
			h.raw(`<div id="posts">`)
			postList(h, page)
			h.raw("</div>")
			return nil
		})
	})
}

// BlogPosts renders only the post list, for HTMX swaps of #posts.
func BlogPosts(page folio.BlogPage) templ.Component {
	return component(func(ctx context.Context, h *html) error {
		postList(h, page)
		return nil
	})
}

func searchForm(h *html, page folio.BlogPage) {
	h.raw(`<form class="search" method="get" action="/blog/">`)
	if page.Selection.Category != "" && page.Selection.Category != folio.CategoryAll {
		h.raw(`<input type="hidden" name="category"`)
		h.attr("value", page.Selection.Category)
		h.raw(">")
	}
	if page.Selection.Tag != "" {
		h.raw(`<input type="hidden" name="tag"`)
		h.attr("value", page.Selection.Tag)
		h.raw(">")
	}
	h.raw(`<input type="search" name="q" placeholder="Search posts"`)
	h.attr("value", page.Query)
	h.raw("></form>")
}

func categoryFacets(h *html, page folio.BlogPage) {
	current := page.Selection.CategoryName()
	h.raw(`<nav class="facets" aria-label="Categories">`)
	for _, c := range page.Categories {
		h.raw("<a")
		h.attr("class", FacetClass(c == current))
		h.attr("href", "/blog/"+page.Selection.WithCategory(c).Query())
		h.raw(">")
		h.text(c)
		h.raw("</a>")
	}
	h.raw("</nav>")
}

// tagFacets shows the selected tag first as a chip that clears it, followed
// by the remaining tags.
func tagFacets(h *html, page folio.BlogPage) {
	if len(page.Tags) == 0 {
		return
	}
	sel := page.Selection
	h.raw(`<nav class="facets" aria-label="Tags">`)
	if sel.Tag != "" {
		h.raw("<a")
		h.attr("class", TagClass(true))
		h.attr("href", "/blog/"+sel.ClearTag().Query())
		h.attr("title", "Clear tag filter")
		h.raw(">#")
		h.text(sel.Tag)
		h.raw(" &times;</a>")
	}
	for _, t := range page.Tags {
		if t == sel.Tag {
			continue
		}
		h.raw("<a")
		h.attr("class", TagClass(false))
		h.attr("href", "/blog/"+sel.WithTag(t).Query())
		h.raw(">#")
		h.text(t)
		h.raw("</a>")
	}
	h.raw("</nav>")
}

func postList(h *html, page folio.BlogPage) {
	h.raw(`<p class="meta">`)
	h.text(page.Count())
	h.raw("</p>")
	if page.Empty() {
		h.raw(`<div class="notice">No posts found matching your filters. <a href="/blog/">Clear all filters</a></div>`)
		return
	}
	for _, p := range page.Posts {
		postCard(h, p, page.Selection)
	}
}

func postCard(h *html, p folio.Post, sel folio.Selection) {
	h.raw(`<article class="card"><p class="meta">`)
	h.text(p.Category)
	h.raw(" &middot; ")
	h.text(p.Date)
	h.raw(" &middot; ")
	h.text(p.ReadTime)
	h.raw("</p><h2><a")
	h.attr("href", p.Link())
	h.raw(">")
	h.text(p.Title)
	h.raw("</a></h2><p>")
	h.text(p.Excerpt)
	h.raw("</p>")
	tagPills(h, p.Tags, sel)
	h.raw("</article>")
}

func tagPills(h *html, tags []string, sel folio.Selection) {
	if len(tags) == 0 {
		return
	}
	h.raw(`<div class="tags">`)
	for _, t := range tags {
		h.raw("<a")
		h.attr("class", TagClass(t == sel.Tag))
		h.attr("href", "/blog/"+sel.WithTag(t).Query())
		h.raw(">")
		h.text(t)
		h.raw("</a>")
	}
	h.raw("</div>")
}
