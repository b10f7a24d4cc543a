package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer converts lesson Markdown into styled terminal output.
type Renderer struct {
	width int
	inner *glamour.TermRenderer
}

// NewRenderer creates a renderer that wraps text at the given width.
func NewRenderer(width int) (*Renderer, error) {
	if width < 20 {
		width = 20
	}
	inner, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{width: width, inner: inner}, nil
}

// Width returns the wrap width the renderer was built with.
func (r *Renderer) Width() int {
	return r.width
}

// Render converts Markdown source to ANSI-styled text. On renderer
// failure the raw source is returned so the lesson is never lost.
func (r *Renderer) Render(source string) string {
	out, err := r.inner.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}
