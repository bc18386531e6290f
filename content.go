package folio

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

// maxDocumentSize caps how much of a remote content document is read.
const maxDocumentSize = 2 << 20

// DocumentSource fetches the markdown body of a post by id.
type DocumentSource interface {
	Fetch(ctx context.Context, id string) (string, error)
}

// DirSource reads <id>.md from a file system, typically os.DirFS of the
// content directory.
type DirSource struct {
	FS fs.FS
}

// Fetch implements DocumentSource.
func (s DirSource) Fetch(_ context.Context, id string) (string, error) {
	name, err := documentName(id)
	if err != nil {
		return "", err
	}
	b, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HTTPSource fetches <BaseURL>/<id>.md over HTTP.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates an HTTPSource with the given request timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Fetch implements DocumentSource.
func (s *HTTPSource) Fetch(ctx context.Context, id string) (string, error) {
	name, err := documentName(id)
	if err != nil {
		return "", err
	}
	u := strings.TrimSuffix(s.BaseURL, "/") + "/" + PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", u, err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s returned status %d", u, resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", u, err)
	}
	return string(b), nil
}

// documentName maps a post id to its document file name, rejecting ids that
// would escape the content root.
func documentName(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid post id %q", id)
	}
	name := id + ".md"
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid post id %q", id)
	}
	return name, nil
}

// ContentLoader resolves the markdown body of a post.
type ContentLoader struct {
	Source DocumentSource
	Logger *log.Logger
}

// Load returns the inline content of p, else the document fetched from the
// source, else placeholder content. It never fails.
func (l *ContentLoader) Load(ctx context.Context, p Post) string {
	if p.Content != "" {
		return p.Content
	}
	if l.Source == nil {
		return PlaceholderContent(p.ID, p.Title)
	}
	body, err := l.Source.Fetch(ctx, p.ID)
	if err != nil {
		if l.Logger != nil {
			l.Logger.Warnf("%v", &ContentFetchError{ID: p.ID, Err: err})
		}
		return PlaceholderContent(p.ID, p.Title)
	}
	return body
}

// PlaceholderContent is the markdown shown for a post whose document is missing.
func PlaceholderContent(id, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("This is a placeholder post. To add your content, create a markdown file at:\n\n")
	fmt.Fprintf(&b, "`posts/%s.md`\n\n", id)
	b.WriteString(`## Example Markdown Features

### Code Blocks

` + "```go" + `
func hello() {
	fmt.Println("Hello, World!")
}
` + "```" + `

### Lists

- Item 1
- Item 2
- Item 3

### Blockquotes

> This is a blockquote

### Links

[Visit my GitHub](https://github.com)

### Tables

| Header 1 | Header 2 |
|----------|----------|
| Cell 1   | Cell 2   |
| Cell 3   | Cell 4   |

---

**Note:** Replace this content with your actual blog post in markdown format.
`)
	return b.String()
}
