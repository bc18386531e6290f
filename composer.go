package folio

import (
	"strconv"
	"strings"
	"time"
)

// DefaultReadTime is the read time given to composed posts.
const DefaultReadTime = "5 min read"

// DateLayout is the format of composed post dates, e.g. "January 25, 2026".
const DateLayout = "January 2, 2006"

// Draft is raw composer input. Tags is a comma-separated list.
type Draft struct {
	Title    string `json:"title" form:"title"`
	Excerpt  string `json:"excerpt" form:"excerpt"`
	Category string `json:"category" form:"category"`
	Tags     string `json:"tags" form:"tags"`
	Content  string `json:"content" form:"content"`
}

// Composer validates drafts and turns them into posts.
type Composer struct {
	Store    *PostStore
	ReadTime string
	Now      func() time.Time
}

// Validate checks the required fields of d.
func (c *Composer) Validate(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required."}
	}
	if strings.TrimSpace(d.Excerpt) == "" {
		return &ValidationError{Field: "excerpt", Message: "Excerpt is required."}
	}
	return nil
}

// Build validates d and returns the post it describes.
func (c *Composer) Build(d Draft) (Post, error) {
	if err := c.Validate(d); err != nil {
		return Post{}, err
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	readTime := c.ReadTime
	if readTime == "" {
		readTime = DefaultReadTime
	}
	title := strings.TrimSpace(d.Title)
	return Post{
		ID:       PostID(title),
		Title:    title,
		Excerpt:  strings.TrimSpace(d.Excerpt),
		Category: strings.TrimSpace(d.Category),
		Tags:     SplitTags(d.Tags),
		Date:     now().Format(DateLayout),
		ReadTime: readTime,
		Content:  strings.TrimSpace(d.Content),
	}, nil
}

// Publish builds a post from d, gives it an id not used in posts, and writes
// the sequence with the new post first. posts itself is not modified. On a
// validation error nothing is written. A failed write returns the new
// sequence and post together with a *StorageWriteError so the caller can keep
// them in memory.
func (c *Composer) Publish(posts []Post, d Draft) ([]Post, Post, error) {
	post, err := c.Build(d)
	if err != nil {
		return posts, Post{}, err
	}
	post.ID = UniqueID(posts, post.ID)
	next := make([]Post, 0, len(posts)+1)
	next = append(next, post)
	next = append(next, posts...)
	if c.Store != nil {
		if err := c.Store.Write(next); err != nil {
			return next, post, err
		}
	}
	return next, post, nil
}

// PostID derives a post id from a title: lower-cased, with each run of
// whitespace replaced by a single hyphen.
func PostID(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// UniqueID returns id, or id with the first free "-N" suffix (N >= 2) when id
// is already used in posts.
func UniqueID(posts []Post, id string) string {
	used := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		used[p.ID] = struct{}{}
	}
	if _, ok := used[id]; !ok {
		return id
	}
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

// SplitTags splits a comma-separated tag list, trimming each tag and
// dropping empty ones. Order is preserved.
func SplitTags(raw string) []string {
	tags := FilterEmpty(strings.Split(raw, ","))
	if tags == nil {
		return []string{}
	}
	return tags
}
