package views

import (
	"context"

	"github.com/eringen/folio"
)

func layout(ctx context.Context, h *html, site folio.SiteConfig, meta folio.PageMeta, jsonLD string, body func(ctx context.Context, h *html) error) error {
	h.raw("<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	title := meta.Title
	if title == "" {
		title = site.Name
	}
	h.raw("<title>")
	h.text(title)
	h.raw("</title>")
	if meta.Description != "" {
		h.raw(`<meta name="description"`)
		h.attr("content", meta.Description)
		h.raw(">")
	}
	if meta.URL != "" {
		h.raw(`<link rel="canonical"`)
		h.attr("href", meta.URL)
		h.raw(`><meta property="og:url"`)
		h.attr("content", meta.URL)
		h.raw(">")
	}
	h.raw(`<meta property="og:title"`)
	h.attr("content", title)
	h.raw(">")
	if meta.OGType != "" {
		h.raw(`<meta property="og:type"`)
		h.attr("content", meta.OGType)
		h.raw(">")
	}
	h.raw(`<link rel="stylesheet" href="/public/folio.css">`)
	h.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
	h.attr("title", site.Name)
	h.raw(">")
	if jsonLD != "" {
		// JSON-LD comes from json.Marshal, which escapes <, > and &.
		h.raw(`<script type="application/ld+json">` + jsonLD + "</script>")
	}
	h.raw("</head><body><header class=\"site\"><a href=\"/blog/\">")
	h.text(site.Name)
	h.raw("</a> <a href=\"/blog/new/\">New post</a></header><main>")
	if err := body(ctx, h); err != nil {
		return err
	}
	h.raw("</main></body></html>")
	return nil
}

func flash(h *html, msg string) {
	if msg == "" {
		return
	}
	h.raw(`<div class="flash" role="status">`)
	h.text(msg)
	h.raw("</div>")
}
