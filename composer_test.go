package folio

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.January, 25, 10, 30, 0, 0, time.UTC)
}

func TestPostID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My First Post", "my-first-post"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"Go: Why?", "go:-why?"},
		{"single", "single"},
	}
	for _, tt := range tests {
		if got := PostID(tt.title); got != tt.want {
			t.Errorf("PostID(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"A, b ,C", []string{"A", "b", "C"}},
		{"Go,,Docker, ", []string{"Go", "Docker"}},
		{"", []string{}},
		{" , ,", []string{}},
	}
	for _, tt := range tests {
		got := SplitTags(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitTags(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestUniqueID(t *testing.T) {
	posts := []Post{{ID: "hello"}, {ID: "hello-2"}, {ID: "other"}}
	tests := []struct {
		id   string
		want string
	}{
		{"new", "new"},
		{"other", "other-2"},
		{"hello", "hello-3"},
	}
	for _, tt := range tests {
		if got := UniqueID(posts, tt.id); got != tt.want {
			t.Errorf("UniqueID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestComposerValidate(t *testing.T) {
	c := &Composer{}
	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"missing title", Draft{Excerpt: "x"}, "title"},
		{"blank title", Draft{Title: "   ", Excerpt: "x"}, "title"},
		{"missing excerpt", Draft{Title: "x"}, "excerpt"},
		{"both missing reports title", Draft{}, "title"},
		{"valid", Draft{Title: "x", Excerpt: "y"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Validate(tt.draft)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("Validate() = %v, want ValidationError on %s", err, tt.field)
			}
		})
	}
}

func TestComposerBuild(t *testing.T) {
	c := &Composer{Now: fixedClock}
	post, err := c.Build(Draft{
		Title:    " My First Post ",
		Excerpt:  " Hello ",
		Category: "Learning Progress",
		Tags:     "A, b ,C",
		Content:  "# Body\n",
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := Post{
		ID:       "my-first-post",
		Title:    "My First Post",
		Excerpt:  "Hello",
		Category: "Learning Progress",
		Tags:     []string{"A", "b", "C"},
		Date:     "January 25, 2026",
		ReadTime: DefaultReadTime,
		Content:  "# Body",
	}
	if !reflect.DeepEqual(post, want) {
		t.Fatalf("Build = %+v, want %+v", post, want)
	}
}

func TestComposerReadTimeIsConfigurable(t *testing.T) {
	c := &Composer{Now: fixedClock, ReadTime: "2 min read"}
	post, err := c.Build(Draft{Title: "t", Excerpt: "e"})
	if err != nil {
		t.Fatal(err)
	}
	if post.ReadTime != "2 min read" {
		t.Fatalf("ReadTime = %q", post.ReadTime)
	}
}

func TestComposerPublishPrependsAndSaves(t *testing.T) {
	kv := &memKV{}
	store := NewPostStore(kv, "blog-posts", nil, nil)
	c := &Composer{Store: store, Now: fixedClock}
	posts := samplePosts()
	before := samplePosts()

	next, post, err := c.Publish(posts, Draft{Title: "My First Post", Excerpt: "Hi", Tags: "Go"})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if post.ID != "my-first-post" {
		t.Fatalf("post.ID = %q", post.ID)
	}
	if got := ids(next); !reflect.DeepEqual(got, []string{"my-first-post", "a", "b", "c"}) {
		t.Fatalf("next = %v", got)
	}
	if !reflect.DeepEqual(posts, before) {
		t.Fatal("Publish must not modify the input slice")
	}
	if got := ids(store.Load()); !reflect.DeepEqual(got, ids(next)) {
		t.Fatalf("stored = %v, want %v", got, ids(next))
	}
}

func TestComposerPublishDisambiguatesIDs(t *testing.T) {
	c := &Composer{Now: fixedClock}
	posts := []Post{{ID: "hello"}}
	next, post, err := c.Publish(posts, Draft{Title: "Hello", Excerpt: "again"})
	if err != nil {
		t.Fatal(err)
	}
	if post.ID != "hello-2" || next[0].ID != "hello-2" {
		t.Fatalf("post.ID = %q, want hello-2", post.ID)
	}
}

func TestComposerPublishRejectsWithoutSaving(t *testing.T) {
	kv := &memKV{}
	c := &Composer{Store: NewPostStore(kv, "blog-posts", nil, nil), Now: fixedClock}
	posts := samplePosts()

	next, _, err := c.Publish(posts, Draft{Title: "No excerpt"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != "Excerpt is required." {
		t.Fatalf("Publish err = %v", err)
	}
	if !reflect.DeepEqual(next, posts) {
		t.Fatal("rejected publish should return the original posts")
	}
	if _, ok := kv.entries["blog-posts"]; ok {
		t.Fatal("rejected publish must not save")
	}
}

func TestComposerPublishReturnsWriteFailure(t *testing.T) {
	c := &Composer{Store: NewPostStore(&memKV{setErr: errors.New("locked")}, "blog-posts", nil, nil), Now: fixedClock}

	next, post, err := c.Publish(samplePosts(), Draft{Title: "Unsaved", Excerpt: "x"})
	var werr *StorageWriteError
	if !errors.As(err, &werr) {
		t.Fatalf("Publish err = %v, want StorageWriteError", err)
	}
	if post.ID != "unsaved" || len(next) != 4 || next[0].ID != "unsaved" {
		t.Fatalf("failed write should still return the new list, got %v", ids(next))
	}
}
