package folio

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/gommon/log"
)

func setupTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenSQLiteKV(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to open kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := log.New("test")
	l.SetOutput(&buf)
	return l, &buf
}

// memKV is an in-memory KV whose operations can be made to fail.
type memKV struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func (m *memKV) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	m.entries[key] = value
	return nil
}

func samplePosts() []Post {
	return []Post{
		{ID: "a", Title: "A", Excerpt: "first", Category: "Full Stack", Tags: []string{"Go", "Docker"}, Date: "2026-01-18", ReadTime: "8 min"},
		{ID: "b", Title: "B", Excerpt: "second", Category: "Learning Progress", Tags: []string{"Go"}, Date: "2026-01-19", ReadTime: "5 min read"},
		{ID: "c", Title: "C", Excerpt: "third", Category: "Full Stack", Tags: []string{"AWS"}, Date: "2026-01-20", ReadTime: "3 min"},
	}
}

func TestSQLiteKVGetSetDelete(t *testing.T) {
	kv := setupTestKV(t)

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want false, nil", ok, err)
	}
	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set (replace) failed: %v", err)
	}
	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("Get(k) = %q, %v, %v; want v2, true, nil", v, ok, err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("entry should be gone after Delete")
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete of missing key should not fail: %v", err)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	kv := setupTestKV(t)
	s := NewPostStore(kv, "", nil, nil)
	if s.Key() != DefaultSnapshotKey {
		t.Fatalf("Key() = %q, want %q", s.Key(), DefaultSnapshotKey)
	}

	posts := samplePosts()
	s.Save(posts)

	got := s.Load()
	if !reflect.DeepEqual(got, posts) {
		t.Fatalf("Load() = %+v, want %+v", got, posts)
	}
}

func TestStoreLoadWithoutSnapshotReturnsDefaults(t *testing.T) {
	defaults := samplePosts()[:1]
	s := NewPostStore(&memKV{}, "blog-posts", defaults, nil)

	got := s.Load()
	if !reflect.DeepEqual(got, defaults) {
		t.Fatalf("Load() = %+v, want defaults", got)
	}

	got[0].Tags[0] = "changed"
	if defaults[0].Tags[0] != "Go" {
		t.Fatal("Load must return a copy of the defaults")
	}
}

func TestStoreLoadEmptyDefaultsIsNotNil(t *testing.T) {
	s := NewPostStore(&memKV{}, "blog-posts", nil, nil)
	got := s.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("Load() = %#v, want empty non-nil slice", got)
	}
}

func TestStoreLoadMalformedSnapshotFallsBack(t *testing.T) {
	logger, buf := testLogger()
	kv := &memKV{entries: map[string]string{"blog-posts": "{not json"}}
	defaults := samplePosts()[:1]
	s := NewPostStore(kv, "blog-posts", defaults, logger)

	got := s.Load()
	if !reflect.DeepEqual(got, defaults) {
		t.Fatalf("Load() = %+v, want defaults", got)
	}
	if !strings.Contains(buf.String(), "read snapshot") {
		t.Errorf("expected read error to be logged, got %q", buf.String())
	}
}

func TestStoreLoadReadErrorFallsBack(t *testing.T) {
	logger, buf := testLogger()
	s := NewPostStore(&memKV{getErr: errors.New("disk gone")}, "blog-posts", nil, logger)

	got := s.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("Load() = %#v, want empty defaults", got)
	}
	if !strings.Contains(buf.String(), "disk gone") {
		t.Errorf("expected read error to be logged, got %q", buf.String())
	}
}

func TestStoreSaveErrorIsLoggedNotReturned(t *testing.T) {
	logger, buf := testLogger()
	s := NewPostStore(&memKV{setErr: errors.New("quota exceeded")}, "blog-posts", nil, logger)

	s.Save(samplePosts())

	if !strings.Contains(buf.String(), "quota exceeded") {
		t.Errorf("expected write error to be logged, got %q", buf.String())
	}
}

func TestStoreSaveNilWritesEmptyList(t *testing.T) {
	kv := &memKV{}
	s := NewPostStore(kv, "blog-posts", samplePosts(), nil)
	s.Save(nil)
	if kv.entries["blog-posts"] != "[]" {
		t.Fatalf("snapshot = %q, want []", kv.entries["blog-posts"])
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("an empty snapshot must not fall back to defaults, got %d posts", len(got))
	}
}

func TestStoreFindByID(t *testing.T) {
	s := NewPostStore(&memKV{}, "blog-posts", samplePosts(), nil)

	p, ok := s.FindByID("b")
	if !ok || p.Title != "B" {
		t.Fatalf("FindByID(b) = %+v, %v", p, ok)
	}
	if _, ok := s.FindByID("nope"); ok {
		t.Fatal("FindByID(nope) should not find anything")
	}
}

func TestFindPostReturnsFirstDuplicate(t *testing.T) {
	posts := []Post{{ID: "x", Title: "first"}, {ID: "x", Title: "second"}}
	p, ok := FindPost(posts, "x")
	if !ok || p.Title != "first" {
		t.Fatalf("FindPost = %+v, want the first match", p)
	}
}

func TestDuplicateIDs(t *testing.T) {
	posts := []Post{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "a"}, {ID: "c"}, {ID: "b"}}
	got := DuplicateIDs(posts)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DuplicateIDs = %v, want %v", got, want)
	}
	if got := DuplicateIDs(samplePosts()); got != nil {
		t.Fatalf("DuplicateIDs(unique) = %v, want nil", got)
	}
}

func TestStorageErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(&StorageReadError{Key: "k", Err: cause}, cause) {
		t.Error("StorageReadError should unwrap to its cause")
	}
	if !errors.Is(&StorageWriteError{Key: "k", Err: cause}, cause) {
		t.Error("StorageWriteError should unwrap to its cause")
	}
	if !errors.Is(&ContentFetchError{ID: "p", Err: cause}, cause) {
		t.Error("ContentFetchError should unwrap to its cause")
	}
}

func TestStoreWriteReportsFailure(t *testing.T) {
	s := NewPostStore(&memKV{setErr: errors.New("read-only")}, "blog-posts", nil, nil)
	err := s.Write(samplePosts())
	var werr *StorageWriteError
	if !errors.As(err, &werr) || werr.Key != "blog-posts" {
		t.Fatalf("Write err = %v, want StorageWriteError", err)
	}

	ok := NewPostStore(&memKV{}, "blog-posts", nil, nil)
	if err := ok.Write(samplePosts()); err != nil {
		t.Fatalf("Write = %v", err)
	}
}
