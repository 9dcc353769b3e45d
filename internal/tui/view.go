package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pmarcondes/tarefa/internal/tui/components"
	"github.com/pmarcondes/tarefa/internal/tui/state"
	"github.com/pmarcondes/tarefa/internal/tui/theme"
)

const detailWidth = 72

// View renders the current state of the application.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.ui.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.ui.Mode() == state.ModeLogin {
		view.Content = m.viewLogin()
		return view
	}

	base := m.viewBoard()
	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	switch m.ui.Mode() {
	case state.ModeForm:
		layers = append(layers, m.centeredLayer(m.viewForm()))
	case state.ModeDetail:
		width := detailWidth
		if width > m.ui.Width()-4 {
			width = m.ui.Width() - 4
		}
		layers = append(layers, m.centeredLayer(components.RenderTaskDetail(m.ui.DetailTask(), width)))
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

func (m Model) viewLogin() string {
	title := components.TitleStyle.Render("Tarefa — Task Manager")

	body := title + "\n\n"
	if m.form.Form != nil {
		body += m.form.Form.View()
	}
	if notif, isErr := m.ui.Notification(); notif != "" {
		if isErr {
			body += "\n\n" + components.ErrorTextStyle.Render(notif)
		} else {
			body += "\n\n" + components.InfoTextStyle.Render(notif)
		}
	}
	if m.app.Loading() {
		body += "\n\n" + m.spin.View() + " Signing in..."
	}

	box := components.FormBoxStyle.Render(body)
	return lipgloss.Place(m.ui.Width(), m.ui.Height(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewBoard() string {
	tabs := components.RenderTabs(m.app.Filter(), m.ui.Width())

	var body string
	switch {
	case m.app.Loading():
		body = m.spin.View() + " Loading board..."
	case len(m.app.Content()) == 0:
		body = components.SubtleStyle.Render("No content available for this filter.")
	default:
		body = components.RenderBoard(m.app.Content(), m.ui.SelectedColumn(), m.ui.SelectedCard())
	}

	notif, notifIsErr := m.ui.Notification()
	statusbar := components.RenderStatusBar(
		m.ui.Width(),
		m.app.CurrentUser().Name,
		m.keyHints(),
		notif,
		notifIsErr,
	)

	bodyHeight := m.ui.Height() - lipgloss.Height(tabs) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyBox := lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, bodyBox, statusbar)
}

func (m Model) viewForm() string {
	var title string
	switch m.form.Kind {
	case state.FormCreateUser:
		title = "New Collaborator"
	case state.FormCreateTeam:
		title = "New Team"
	case state.FormCreateTask:
		title = "New Task"
	case state.FormAssignUser:
		title = "Add to Team"
	case state.FormAssignTask:
		title = "Assign Task"
	}

	body := components.TitleStyle.Render(title) + "\n\n"
	if m.form.Form != nil {
		body += m.form.Form.View()
	}
	body += "\n" + components.SubtleStyle.Render("esc: cancel")

	return components.FormBoxStyle.Render(body)
}

func (m Model) centeredLayer(content string) *lipgloss.Layer {
	x := (m.ui.Width() - lipgloss.Width(content)) / 2
	y := (m.ui.Height() - lipgloss.Height(content)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return lipgloss.NewLayer(content).X(x).Y(y)
}

func (m Model) keyHints() string {
	keys := m.cfg.KeyMappings

	viewKey := keys.ViewTask
	if viewKey == " " {
		viewKey = "space"
	}

	hints := fmt.Sprintf(
		"%s: filter  %s/%s: column  %s/%s: card  %s: view  %s: refresh",
		keys.NextFilter,
		keys.PrevColumn, keys.NextColumn,
		keys.PrevTask, keys.NextTask,
		viewKey,
		keys.Refresh,
	)

	if m.app.CurrentUser().Permission.CanCreate() {
		hints += fmt.Sprintf("  %s/%s/%s: new", keys.CreateTask, keys.CreateTeam, keys.CreateUser)
	}
	if m.app.CurrentUser().Permission.CanManage() {
		hints += fmt.Sprintf("  %s/%s: assign", keys.AssignUser, keys.AssignTask)
	}

	return hints + fmt.Sprintf("  %s: quit", keys.Quit)
}
