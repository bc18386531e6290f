// Package views is the default set of page components for a folio site.
package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/eringen/folio"
)

// Default returns the built-in views.
func Default() folio.ViewFuncs {
	return folio.ViewFuncs{
		Blog:        Blog,
		BlogPosts:   BlogPosts,
		Post:        Post,
		Compose:     Compose,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// html accumulates markup. Every dynamic value goes through text or attr.
type html struct {
	bytes.Buffer
}

func (h *html) raw(s string) { h.WriteString(s) }

func (h *html) text(s string) { h.WriteString(templ.EscapeString(s)) }

func (h *html) attr(name, value string) {
	h.WriteString(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func component(fn func(ctx context.Context, h *html) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var h html
		if err := fn(ctx, &h); err != nil {
			return err
		}
		_, err := w.Write(h.Bytes())
		return err
	})
}

// FacetClass returns the CSS classes of a category button.
func FacetClass(active bool) string {
	if active {
		return "facet active"
	}
	return "facet"
}

// TagClass returns the CSS classes of a tag pill.
func TagClass(active bool) string {
	if active {
		return "tag active"
	}
	return "tag"
}
