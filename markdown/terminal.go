package markdown

import "github.com/charmbracelet/glamour"

// Terminal renders content for a terminal of the given width. A width of
// zero or less uses 80 columns.
func Terminal(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}
