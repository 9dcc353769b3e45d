package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Task descriptions may carry markdown. The renderer is cached per
// wrap width because building one is expensive.
var (
	rendererMu    sync.Mutex
	renderer      *glamour.TermRenderer
	rendererWidth int
)

// RenderDescription renders a task description as markdown wrapped to
// the given width. On renderer failure it returns the raw text so the
// detail view never goes blank.
func RenderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return SubtleStyle.Render("No description.")
	}

	rendererMu.Lock()
	defer rendererMu.Unlock()

	if renderer == nil || rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return description
		}
		renderer = r
		rendererWidth = width
	}

	out, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimRight(out, "\n")
}
