package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/tui/theme"
)

// EmptyColumnMessage is shown in a column that has no cards.
const EmptyColumnMessage = "There is no task here yet."

// RenderColumn renders one board column with its title and cards.
// selectedCard marks the highlighted card; pass -1 for an unfocused
// column.
func RenderColumn(col board.Column, selectedCard int, focused bool) string {
	style := ColumnStyle
	if focused {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	title := TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Name, col.CardCount()))

	parts := []string{title, ""}
	switch col.Kind {
	case board.KindPeople:
		for i, p := range col.People {
			parts = append(parts, RenderPersonCard(p, focused && i == selectedCard))
		}
	default:
		for i, t := range col.Tasks {
			parts = append(parts, RenderTaskCard(t, focused && i == selectedCard))
		}
	}

	if col.CardCount() == 0 {
		parts = append(parts, SubtleStyle.Render(EmptyColumnMessage))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RenderBoard lays the columns out horizontally.
func RenderBoard(columns []board.Column, selectedColumn, selectedCard int) string {
	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		focused := i == selectedColumn
		card := -1
		if focused {
			card = selectedCard
		}
		rendered = append(rendered, RenderColumn(col, card, focused))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
