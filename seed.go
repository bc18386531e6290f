package folio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const seedPath = "embedded/seed/posts.yaml"

// ParseSeed decodes a YAML list of posts.
func ParseSeed(r io.Reader) ([]Post, error) {
	var posts []Post
	if err := yaml.NewDecoder(r).Decode(&posts); err != nil {
		if err == io.EOF {
			return []Post{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i, p := range posts {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("decode seed: post %d has no id", i)
		}
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

// DefaultPosts returns the built-in seed posts.
func DefaultPosts() []Post {
	f, err := EmbeddedAssets.Open(seedPath)
	if err != nil {
		panic("folio: embedded seed missing: " + err.Error())
	}
	defer f.Close()
	posts, err := ParseSeed(f)
	if err != nil {
		panic("folio: embedded seed invalid: " + err.Error())
	}
	return posts
}

// LoadSeedFile reads seed posts from a YAML file on disk. An empty path
// selects the built-in seed.
func LoadSeedFile(path string) ([]Post, error) {
	if path == "" {
		return DefaultPosts(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSeed(f)
}
