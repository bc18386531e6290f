package folio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPosts(t *testing.T) {
	posts := DefaultPosts()
	if len(posts) != 1 {
		t.Fatalf("DefaultPosts() returned %d posts, want 1", len(posts))
	}
	p := posts[0]
	if p.ID != "application-deployment" || p.Category != "Full Stack" || p.Date != "2026-01-18" || p.ReadTime != "8 min" {
		t.Errorf("unexpected seed post: %+v", p)
	}
	if len(p.Tags) != 7 || !p.HasTag("AWS") {
		t.Errorf("seed tags = %v", p.Tags)
	}
}

func TestParseSeed(t *testing.T) {
	posts, err := ParseSeed(strings.NewReader(""))
	if err != nil || posts == nil || len(posts) != 0 {
		t.Fatalf("ParseSeed(empty) = %v, %v", posts, err)
	}
	if _, err := ParseSeed(strings.NewReader("- title: no id\n")); err == nil {
		t.Fatal("a post without id should be rejected")
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := "- id: one\n  title: One\n  excerpt: e\n  category: Go\n  tags: [x]\n  date: \"2026-02-01\"\n  readTime: 1 min\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	posts, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "one" || posts[0].Date != "2026-02-01" {
		t.Fatalf("posts = %+v", posts)
	}
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing seed file should fail")
	}
}
