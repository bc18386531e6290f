package folio

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchPosts fuzzy-matches query against each post's title, excerpt,
// category and tags. Results are ordered best match first. An empty query
// returns posts unchanged.
func SearchPosts(posts []Post, query string) []Post {
	query = strings.TrimSpace(query)
	if query == "" {
		return posts
	}
	haystack := make([]string, len(posts))
	for i, p := range posts {
		haystack[i] = strings.Join([]string{p.Title, p.Excerpt, p.Category, strings.Join(p.Tags, " ")}, " ")
	}
	matches := fuzzy.Find(query, haystack)
	results := make([]Post, 0, len(matches))
	for _, m := range matches {
		results = append(results, posts[m.Index])
	}
	return results
}
