package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/pmarcondes/tarefa/internal/models"
)

// RenderTaskDetail renders the full-task overlay: header, dates,
// status and the markdown description.
func RenderTaskDetail(task models.Task, width int) string {
	header := TitleStyle.Render(task.Name) + SubtleStyle.Render(fmt.Sprintf(" #%d", task.ID))

	dates := SubtleStyle.Render(fmt.Sprintf(
		"Start: %s   Deadline: %s",
		models.FormatDateBR(task.Start),
		models.FormatDateBR(task.Deadline),
	))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		renderBadge(string(task.Status)),
		dates,
		"",
		RenderDescription(task.Description, width-6),
	)

	return DetailBoxStyle.Width(width).Render(body)
}
