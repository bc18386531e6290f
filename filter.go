package folio

import "net/url"

// Selection is the active filter state of the blog page.
// An empty Category means "All"; an empty Tag means no tag filter.
type Selection struct {
	Category string
	Tag      string
}

// IsAll reports whether no category filter is active.
func (s Selection) IsAll() bool {
	return s.Category == "" || s.Category == CategoryAll
}

// Active reports whether any filter is applied.
func (s Selection) Active() bool {
	return !s.IsAll() || s.Tag != ""
}

// WithCategory switches category. Switching category always clears the tag.
func (s Selection) WithCategory(category string) Selection {
	return Selection{Category: category}
}

// WithTag selects tag, keeping the category.
func (s Selection) WithTag(tag string) Selection {
	s.Tag = tag
	return s
}

// ClearTag drops the tag filter.
func (s Selection) ClearTag() Selection {
	s.Tag = ""
	return s
}

// CategoryName returns the selected category, "All" when none is set.
func (s Selection) CategoryName() string {
	if s.IsAll() {
		return CategoryAll
	}
	return s.Category
}

// Query encodes the selection as blog page query parameters.
func (s Selection) Query() string {
	v := url.Values{}
	if !s.IsAll() {
		v.Set("category", s.Category)
	}
	if s.Tag != "" {
		v.Set("tag", s.Tag)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// Matches reports whether p passes the selection.
func (s Selection) Matches(p Post) bool {
	if !s.IsAll() && p.Category != s.Category {
		return false
	}
	return s.Tag == "" || p.HasTag(s.Tag)
}

// FilterPosts returns the posts matching sel in their original order.
// The input slice is not modified.
func FilterPosts(posts []Post, sel Selection) []Post {
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if sel.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
