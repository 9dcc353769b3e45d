package components

import (
	"charm.land/lipgloss/v2"
)

// RenderStatusBar renders the bottom line: app name, who is signed
// in, key hints, and any pending notification on the right.
func RenderStatusBar(width int, userName, hints, notification string, notifIsError bool) string {
	left := TitleStyle.Render("Tarefa — Task Manager")
	if userName != "" {
		left += SubtleStyle.Render("  " + userName)
	}
	left += "  " + SubtleStyle.Render(hints)

	right := ""
	if notification != "" {
		if notifIsError {
			right = ErrorTextStyle.Render(notification)
		} else {
			right = InfoTextStyle.Render(notification)
		}
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
