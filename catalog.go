package folio

import (
	"sort"
	"strings"
)

// CategoryAll is the pseudo-category that disables category filtering.
const CategoryAll = "All"

// DefaultCategories is the category enumeration used when none is configured.
var DefaultCategories = []string{
	CategoryAll,
	"Frontend Development",
	"Backend Development",
	"Full Stack",
	"Learning Progress",
}

// Catalog is the configured category list offered as a facet. It is not
// derived from post data.
type Catalog struct {
	categories []string
}

// NewCatalog builds a catalog from categories. "All" is placed first exactly
// once; blanks and repeats are dropped.
func NewCatalog(categories []string) Catalog {
	out := []string{CategoryAll}
	seen := map[string]struct{}{CategoryAll: {}}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return Catalog{categories: out}
}

// Categories returns the category facet values, "All" first.
func (c Catalog) Categories() []string {
	if len(c.categories) == 0 {
		return []string{CategoryAll}
	}
	return append([]string(nil), c.categories...)
}

// Selectable returns the categories a composed post may be filed under.
func (c Catalog) Selectable() []string {
	cats := c.Categories()
	return cats[1:]
}

// Contains reports whether category is part of the catalog.
func (c Catalog) Contains(category string) bool {
	for _, v := range c.categories {
		if v == category {
			return true
		}
	}
	return false
}

// DistinctTags returns every tag used by posts, deduplicated and sorted
// ascending. Tags are compared exactly.
func DistinctTags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}
