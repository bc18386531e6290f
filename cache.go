package folio

import (
	"sync"
	"time"
)

// PostCache holds the running process's copy of the post list and its tag
// facet, reloading from the store after ttl or an explicit Invalidate.
type PostCache struct {
	mu      sync.RWMutex
	posts   []Post
	tags    []string
	fetched time.Time
	ttl     time.Duration
	store   *PostStore
	// dirty is set while posts hold a list the store failed to write.
	dirty bool
}

// NewPostCache creates a PostCache backed by the given store.
func NewPostCache(s *PostStore, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
// An unsaved list is dropped too.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.dirty = false
	c.mu.Unlock()
}

// Replace installs posts, already written to the store, as the current list.
func (c *PostCache) Replace(posts []Post) {
	c.install(posts, false)
}

// ReplaceUnsaved installs posts the store failed to write. They stay the
// current list past the TTL; each expiry retries the write instead of
// reloading, until it succeeds.
func (c *PostCache) ReplaceUnsaved(posts []Post) {
	c.install(posts, true)
}

func (c *PostCache) install(posts []Post, dirty bool) {
	c.mu.Lock()
	c.posts = posts
	c.tags = DistinctTags(posts)
	c.fetched = time.Now()
	c.dirty = dirty
	c.mu.Unlock()
}

// ensureLoaded returns cached posts and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]Post, []string) {
	c.mu.RLock()
	if c.valid() {
		posts, tags := c.posts, c.tags
		c.mu.RUnlock()
		return posts, tags
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.valid():
	case c.dirty && c.posts != nil:
		if err := c.store.Write(c.posts); err != nil {
			c.store.logger.Errorf("retrying unsaved posts: %v", err)
		} else {
			c.dirty = false
		}
		c.fetched = time.Now()
	default:
		c.posts = c.store.Load()
		c.tags = DistinctTags(c.posts)
		c.fetched = time.Now()
	}
	return c.posts, c.tags
}

// All returns every post in display order. Callers must not modify the slice.
func (c *PostCache) All() []Post {
	posts, _ := c.ensureLoaded()
	return posts
}

// Posts returns the posts matching sel.
func (c *PostCache) Posts(sel Selection) []Post {
	posts, _ := c.ensureLoaded()
	return FilterPosts(posts, sel)
}

// Tags returns the distinct tags across all posts.
func (c *PostCache) Tags() []string {
	_, tags := c.ensureLoaded()
	return tags
}

// Get returns the first post with id.
func (c *PostCache) Get(id string) (Post, error) {
	posts, _ := c.ensureLoaded()
	if p, ok := FindPost(posts, id); ok {
		return p, nil
	}
	return Post{}, ErrNotFound
}
