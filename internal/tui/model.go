// Package tui implements the terminal board following the
// Model-View-Update pattern.
package tui

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/config"
	"github.com/pmarcondes/tarefa/internal/session"
	"github.com/pmarcondes/tarefa/internal/tui/forms"
	"github.com/pmarcondes/tarefa/internal/tui/state"
	"github.com/pmarcondes/tarefa/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	cfg       *config.Config
	client    *api.Client
	projector *board.Projector

	app  *state.AppState
	ui   *state.UIState
	form *state.FormState

	spin spinner.Model
}

// NewModel builds the initial model. With a restored session it goes
// straight to the board; otherwise it opens the login form.
func NewModel(cfg *config.Config, client *api.Client, sess *session.Session) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		cfg:       cfg,
		client:    client,
		projector: board.NewProjector(client),
		app:       state.NewAppState(),
		ui:        state.NewUIState(),
		form:      state.NewFormState(),
		spin:      sp,
	}

	if sess != nil {
		client.SetToken(sess.Token)
		m.app.SetCurrentUser(sess.User)
		m.ui.SetMode(state.ModeBoard)
	} else {
		m.openLoginForm()
	}

	return m
}

// Init starts the first load, or the login form when signed out.
func (m Model) Init() tea.Cmd {
	if m.ui.Mode() == state.ModeBoard {
		return tea.Batch(m.spin.Tick, m.reload())
	}
	return m.form.Form.Init()
}

func (m *Model) openLoginForm() {
	m.form.Reset()
	m.form.Kind = state.FormLogin
	m.form.Form = forms.Login(m.form)
	m.ui.SetMode(state.ModeLogin)
}

// reload starts a full data cycle: board join, user join and the
// global task list, followed by a projection once the board lands.
func (m *Model) reload() tea.Cmd {
	gen := m.app.BumpDataGen()
	m.app.SetLoading(true)
	return tea.Batch(
		loadBoardCmd(m.client, gen),
		loadUsersCmd(m.client, gen),
		loadTasksCmd(m.client, gen),
	)
}

// project recomputes the visible columns for the current filter.
func (m *Model) project(viewGen int) tea.Cmd {
	return projectContentCmd(
		m.projector,
		viewGen,
		m.app.Filter(),
		m.app.Teams(),
		m.app.Users(),
		m.app.CurrentUser(),
	)
}

// selectedColumn returns the focused column, or nil on an empty board.
func (m *Model) selectedColumn() *board.Column {
	content := m.app.Content()
	idx := m.ui.SelectedColumn()
	if idx < 0 || idx >= len(content) {
		return nil
	}
	return &content[idx]
}
