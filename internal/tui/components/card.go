package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/models"
	"github.com/pmarcondes/tarefa/internal/tui/theme"
)

// RenderTaskCard renders one task as a bordered card: name with its
// id, a trimmed description, then the status badge and the deadline
// in dd/mm/yyyy.
func RenderTaskCard(task models.Task, selected bool) string {
	style := CardStyle
	if selected {
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}

	name := TitleStyle.Render(truncate(task.Name, nameMaxLength))
	id := SubtleStyle.Render(fmt.Sprintf(" #%d", task.ID))

	lines := []string{name + id}
	if desc := truncate(task.Description, descMaxLength); desc != "" {
		lines = append(lines, SubtleStyle.Render(desc))
	}
	lines = append(lines, renderBadge(string(task.Status))+" "+SubtleStyle.Render(task.DeadlineDisplay()))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderPersonCard renders one team member: name, email, then the
// role badge and the join date.
func RenderPersonCard(p board.Person, selected bool) string {
	style := CardStyle
	if selected {
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}

	lines := []string{
		TitleStyle.Render(truncate(p.Name, nameMaxLength)),
		SubtleStyle.Render(truncate(p.Email, descMaxLength)),
		renderBadge(p.Role) + " " + SubtleStyle.Render(p.Joined),
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderBadge(value string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.BadgeColor(value))).
		Padding(0, 1).
		Render(value)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
