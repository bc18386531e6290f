package folio

import (
	"encoding/json"

	"github.com/labstack/gommon/log"
)

// DefaultSnapshotKey is the KV entry holding the serialized post list.
const DefaultSnapshotKey = "blog-posts"

// PostStore loads and saves the full post sequence as one JSON snapshot.
// It holds no live state: every Load reads the backend again.
type PostStore struct {
	kv       KV
	key      string
	defaults []Post
	logger   *log.Logger
}

// NewPostStore returns a store reading and writing key in kv. defaults is
// returned by Load whenever no usable snapshot exists.
func NewPostStore(kv KV, key string, defaults []Post, logger *log.Logger) *PostStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	if logger == nil {
		logger = log.New("folio")
	}
	return &PostStore{kv: kv, key: key, defaults: defaults, logger: logger}
}

// Key returns the KV entry name of the snapshot.
func (s *PostStore) Key() string {
	return s.key
}

// Load returns the persisted posts. A missing, unreadable or malformed
// snapshot is logged and replaced by a copy of the defaults.
func (s *PostStore) Load() []Post {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Errorf("%v", &StorageReadError{Key: s.key, Err: err})
		return s.defaultPosts()
	}
	if !ok {
		return s.defaultPosts()
	}
	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		s.logger.Errorf("%v", &StorageReadError{Key: s.key, Err: err})
		return s.defaultPosts()
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts
}

// Save replaces the snapshot with posts. Failures are logged; the caller's
// in-memory posts stay authoritative for the running process.
func (s *PostStore) Save(posts []Post) {
	if err := s.Write(posts); err != nil {
		s.logger.Errorf("%v", err)
	}
}

// Write replaces the snapshot with posts and reports a failed write as a
// *StorageWriteError. Callers with nothing to fall back on use it instead of Save.
func (s *PostStore) Write(posts []Post) error {
	if posts == nil {
		posts = []Post{}
	}
	b, err := json.Marshal(posts)
	if err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}
	if err := s.kv.Set(s.key, string(b)); err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}
	return nil
}

// FindByID loads the snapshot and returns the first post with id.
func (s *PostStore) FindByID(id string) (Post, bool) {
	return FindPost(s.Load(), id)
}

func (s *PostStore) defaultPosts() []Post {
	out := make([]Post, len(s.defaults))
	for i, p := range s.defaults {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

// FindPost returns the first post in posts whose ID equals id.
func FindPost(posts []Post, id string) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// DuplicateIDs returns every id that occurs more than once in posts, in
// order of first repetition.
func DuplicateIDs(posts []Post) []string {
	seen := make(map[string]int, len(posts))
	var dups []string
	for _, p := range posts {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			dups = append(dups, p.ID)
		}
	}
	return dups
}
