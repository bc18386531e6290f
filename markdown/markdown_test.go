package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"heading", "# Title", []string{"<h1>Title</h1>"}},
		{"bold", "**bold**", []string{"<strong>bold</strong>"}},
		{"italic", "*italic*", []string{"<em>italic</em>"}},
		{"inline code", "use `go test`", []string{"<code>go test</code>"}},
		{"link", "[site](https://example.com)", []string{`<a href="https://example.com">site</a>`}},
		{"list", "- one\n- two", []string{"<ul>", "<li>one</li>", "<li>two</li>"}},
		{"fenced code", "```go\nfmt.Println()\n```", []string{`<code class="language-go">`}},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<th>a</th>", "<td>2</td>"}},
		{"strikethrough", "~~gone~~", []string{"<del>gone</del>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderMarkdown(&buf, tt.input); err != nil {
				t.Fatalf("RenderMarkdown: %v", err)
			}
			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, w)
				}
			}
		})
	}
}

func TestRenderMarkdownDropsRawHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, "<script>alert(1)</script>"); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("raw HTML should be omitted, got %q", buf.String())
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("Hello *world*").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<em>world</em>") {
		t.Errorf("got %q", buf.String())
	}
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("# Deploying\n\nSome text.", 0)
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	if !strings.Contains(out, "Deploying") {
		t.Errorf("Terminal output missing heading: %q", out)
	}
}
