package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pmarcondes/tarefa/internal/board"
)

// RenderTabs renders the filter row. The active filter gets the open
// bottom border so it reads as attached to the board below it.
func RenderTabs(active board.Filter, width int) string {
	var rendered []string
	for _, f := range board.Filters() {
		if f == active {
			rendered = append(rendered, ActiveTabStyle.Render(f.Label()))
		} else {
			rendered = append(rendered, TabStyle.Render(f.Label()))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gapWidth := width - lipgloss.Width(row) - 2
	if gapWidth > 0 {
		gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))
		row = lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
	}
	return row
}
