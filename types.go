package folio

// Post is one blog entry. Its JSON form is the element type of the persisted snapshot.
type Post struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
	Date     string   `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	// Content is empty when the body lives in an external <id>.md document.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Link returns the site-relative URL of the post page.
func (p Post) Link() string {
	return "/blog/" + PathEscape(p.ID) + "/"
}

// HasTag reports whether tag is one of the post's tags. Matching is exact.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
