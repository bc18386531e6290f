package folio

import "strconv"

// BlogPage is the view model of the post listing.
type BlogPage struct {
	Site       SiteConfig
	Meta       PageMeta
	Posts      []Post
	Categories []string
	Tags       []string
	Selection  Selection
	Query      string
	Flash      string
}

// Count returns the "Showing N posts" line.
func (p BlogPage) Count() string {
	n := len(p.Posts)
	if n == 1 {
		return "Showing 1 post"
	}
	return "Showing " + strconv.Itoa(n) + " posts"
}

// Empty reports whether the filters matched nothing.
func (p BlogPage) Empty() bool {
	return len(p.Posts) == 0
}

// PostPage is the view model of a single post.
type PostPage struct {
	Site    SiteConfig
	Meta    PageMeta
	Post    Post
	Content string // markdown, already resolved
	Related []Post
	Flash   string
	JSONLD  string
}

// ComposePage is the view model of the new-post form.
type ComposePage struct {
	Site       SiteConfig
	Meta       PageMeta
	Draft      Draft
	Categories []string
	Error      *ValidationError
	CSRFToken  string
}
