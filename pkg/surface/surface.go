// Package surface defines output rendering for strategy rankings.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"io"

	"github.com/strategos/strategos/internal/ranking"
)

// Renderer produces formatted output from a ranking result.
type Renderer interface {
	// Render writes the formatted ranking to the writer.
	Render(w io.Writer, result *ranking.Result) error
}

// ForFormat returns the renderer for a format name, defaulting to terminal.
func ForFormat(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "markdown", "md":
		return &MarkdownRenderer{}
	default:
		return &TerminalRenderer{}
	}
}
