package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/session"
	"github.com/pmarcondes/tarefa/internal/tui/forms"
	"github.com/pmarcondes/tarefa/internal/tui/state"
)

// Update routes messages to the handler for the current mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.app.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case boardLoadedMsg:
		return m.handleBoardLoaded(msg)

	case usersLoadedMsg:
		return m.handleUsersLoaded(msg)

	case tasksLoadedMsg:
		if msg.gen != m.app.DataGen() {
			return m, nil
		}
		if msg.err != nil {
			slog.Error("task list load failed", "error", msg.err)
			return m, nil
		}
		m.app.SetAllTasks(msg.tasks)
		return m, nil

	case contentMsg:
		// A projection for an older filter must not overwrite the
		// current one.
		if msg.gen != m.app.ViewGen() {
			return m, nil
		}
		m.app.SetContent(msg.columns)
		m.ui.ClampSelection(len(msg.columns), m.selectedCardCount(msg.columns))
		return m, nil

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Forms consume non-key messages too (blink, etc.)
	if m.ui.Mode() == state.ModeLogin || m.ui.Mode() == state.ModeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleBoardLoaded(msg boardLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.app.DataGen() {
		return m, nil
	}
	m.app.SetLoading(false)

	if msg.err != nil {
		slog.Error("board load failed", "error", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return m.signOut("Session expired. Sign in again.")
		}
		m.ui.SetError("Server connection error")
		return m, nil
	}

	m.app.SetTeams(msg.columns)
	return m, m.project(m.app.ViewGen())
}

func (m Model) handleUsersLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.app.DataGen() {
		return m, nil
	}
	if msg.err != nil {
		slog.Error("user list load failed", "error", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return m.signOut("Session expired. Sign in again.")
		}
		return m, nil
	}
	m.app.SetUsers(msg.members)

	// The collaborators view projects from users, so refresh it.
	if m.app.Filter() == board.FilterCollaborators {
		return m, m.project(m.app.ViewGen())
	}
	return m, nil
}

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.app.SetLoading(false)

	if msg.err != nil {
		slog.Warn("login failed", "error", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.ui.SetError("Invalid email or password")
		} else {
			m.ui.SetError("Server connection error")
		}
		m.openLoginForm()
		return m, m.form.Form.Init()
	}

	m.client.SetToken(msg.resp.Token)
	m.app.SetCurrentUser(msg.resp.User)
	if err := session.New(msg.resp.Token, msg.resp.User).Save(); err != nil {
		slog.Warn("could not persist session", "error", err)
	}

	m.form.Reset()
	m.ui.ClearNotification()
	m.ui.SetMode(state.ModeBoard)
	return m, tea.Batch(m.spin.Tick, m.reload())
}

func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.app.SetLoading(false)

	if msg.err != nil {
		slog.Error("mutation failed", "action", msg.action, "error", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return m.signOut("Session expired. Sign in again.")
		}
		m.ui.SetError(mutationErrorText(msg.action))
		return m, nil
	}

	m.ui.SetInfo(mutationSuccessText(msg.action))
	return m, tea.Batch(m.spin.Tick, m.reload())
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	// Config files write the space bar as " ".
	if key == "space" {
		key = " "
	}

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.ui.Mode() {
	case state.ModeLogin:
		return m.updateForm(msg)

	case state.ModeForm:
		if key == "esc" {
			m.form.Reset()
			m.ui.SetMode(state.ModeBoard)
			return m, nil
		}
		return m.updateForm(msg)

	case state.ModeDetail:
		switch key {
		case "esc", m.cfg.KeyMappings.ViewTask, m.cfg.KeyMappings.Quit:
			m.ui.SetMode(state.ModeBoard)
		}
		return m, nil
	}

	return m.handleBoardKey(key)
}

func (m Model) handleBoardKey(key string) (tea.Model, tea.Cmd) {
	keys := m.cfg.KeyMappings
	perm := m.app.CurrentUser().Permission

	switch key {
	case keys.Quit:
		return m, tea.Quit

	case keys.NextFilter:
		m.ui.ClearNotification()
		return m, m.project(m.app.NextFilter())

	case keys.PrevFilter:
		m.ui.ClearNotification()
		return m, m.project(m.app.PrevFilter())

	case keys.PrevColumn:
		m.ui.MoveColumn(-1, len(m.app.Content()))
		return m, nil

	case keys.NextColumn:
		m.ui.MoveColumn(1, len(m.app.Content()))
		return m, nil

	case keys.PrevTask:
		m.ui.MoveCard(-1, m.selectedCardCount(m.app.Content()))
		return m, nil

	case keys.NextTask:
		m.ui.MoveCard(1, m.selectedCardCount(m.app.Content()))
		return m, nil

	case keys.ViewTask:
		col := m.selectedColumn()
		if col == nil || col.Kind != board.KindTasks || len(col.Tasks) == 0 {
			return m, nil
		}
		m.ui.SetDetailTask(col.Tasks[m.ui.SelectedCard()])
		m.ui.SetMode(state.ModeDetail)
		return m, nil

	case keys.Refresh:
		m.ui.ClearNotification()
		return m, tea.Batch(m.spin.Tick, m.reload())

	case keys.Logout:
		if err := session.Clear(); err != nil {
			slog.Warn("could not clear session", "error", err)
		}
		return m.signOut("")

	case keys.CreateUser:
		if !perm.CanCreate() {
			m.ui.SetError("You don't have permission to do that.")
			return m, nil
		}
		return m.openForm(state.FormCreateUser, forms.CreateUser(m.form))

	case keys.CreateTeam:
		if !perm.CanCreate() {
			m.ui.SetError("You don't have permission to do that.")
			return m, nil
		}
		return m.openForm(state.FormCreateTeam, forms.CreateTeam(m.form))

	case keys.CreateTask:
		if !perm.CanCreate() {
			m.ui.SetError("You don't have permission to do that.")
			return m, nil
		}
		return m.openForm(state.FormCreateTask, forms.CreateTask(m.form))

	case keys.AssignUser:
		return m.openAssignForm(state.FormAssignUser)

	case keys.AssignTask:
		return m.openAssignForm(state.FormAssignTask)
	}

	return m, nil
}

func (m Model) openForm(kind state.FormKind, form *huh.Form) (tea.Model, tea.Cmd) {
	m.form.Reset()
	m.form.Kind = kind
	m.form.Form = form
	m.ui.SetMode(state.ModeForm)
	return m, form.Init()
}

// openAssignForm opens a user or task assignment targeting the
// focused team column. Synthetic columns (No team, collaborators
// groups without a backing team) cannot receive assignments.
func (m Model) openAssignForm(kind state.FormKind) (tea.Model, tea.Cmd) {
	if !m.app.CurrentUser().Permission.CanManage() {
		m.ui.SetError("You don't have permission to do that.")
		return m, nil
	}

	col := m.selectedColumn()
	if col == nil || col.ID == 0 {
		m.ui.SetError("Select a team column first.")
		return m, nil
	}

	m.form.Reset()
	m.form.Kind = kind
	m.form.TargetTeamID = col.ID

	if kind == state.FormAssignUser {
		m.form.Form = forms.AssignUser(m.form, m.app.Users())
	} else {
		m.form.Form = forms.AssignTask(m.form, m.app.AllTasks())
	}
	m.ui.SetMode(state.ModeForm)
	return m, m.form.Form.Init()
}

// updateForm drives the active huh form and submits it on completion.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form.Form == nil {
		return m, nil
	}

	form, cmd := m.form.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form.Form = f
	}

	if m.form.Form.State == huh.StateCompleted {
		return m.submitForm()
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fs := m.form
	m.app.SetLoading(true)

	var cmd tea.Cmd
	switch fs.Kind {
	case state.FormLogin:
		cmd = loginCmd(m.client, fs.Email, fs.Password)
		// Stay on the login screen until the result lands.
		m.openLoginForm()
		return m, tea.Batch(m.spin.Tick, cmd, m.form.Form.Init())

	case state.FormCreateUser:
		cmd = createUserCmd(m.client, api.CreateUserRequest{
			Name:       fs.Name,
			Email:      fs.Email,
			Password:   fs.Password,
			Role:       fs.Role,
			Permission: fs.Permission,
		})

	case state.FormCreateTeam:
		cmd = createTeamCmd(m.client, fs.Name)

	case state.FormCreateTask:
		cmd = createTaskCmd(m.client, api.CreateTaskRequest{
			Name:        fs.Name,
			Description: fs.Description,
			Status:      fs.Status,
			Start:       fs.Start,
			Deadline:    fs.Deadline,
		})

	case state.FormAssignUser:
		cmd = assignUserCmd(m.client, fs.TargetTeamID, fs.SelectedUserID)

	case state.FormAssignTask:
		cmd = assignTaskCmd(m.client, fs.TargetTeamID, fs.SelectedTaskID)

	default:
		m.app.SetLoading(false)
	}

	m.form.Reset()
	m.ui.SetMode(state.ModeBoard)
	return m, tea.Batch(m.spin.Tick, cmd)
}

// signOut drops the token and all loaded data and returns to login.
// notice, when non-empty, is shown on the login screen.
func (m Model) signOut(notice string) (tea.Model, tea.Cmd) {
	m.client.SetToken("")
	*m.app = *state.NewAppState()
	m.openLoginForm()
	if notice != "" {
		m.ui.SetError(notice)
	} else {
		m.ui.ClearNotification()
	}
	return m, m.form.Form.Init()
}

// selectedCardCount returns how many cards the focused column holds.
func (m *Model) selectedCardCount(content []board.Column) int {
	idx := m.ui.SelectedColumn()
	if idx < 0 || idx >= len(content) {
		return 0
	}
	return content[idx].CardCount()
}

func mutationErrorText(action string) string {
	switch action {
	case actionCreateUser:
		return "Error creating user. Check the fields and try again."
	case actionCreateTeam:
		return "Error creating team. Check the fields and try again."
	case actionCreateTask:
		return "Error creating task. Check the fields and try again."
	case actionAssignUser:
		return "Error assigning user to team."
	case actionAssignTask:
		return "Error assigning task to team."
	default:
		return "Error saving changes. Try again."
	}
}

func mutationSuccessText(action string) string {
	switch action {
	case actionCreateUser:
		return "User created."
	case actionCreateTeam:
		return "Team created."
	case actionCreateTask:
		return "Task created."
	case actionAssignUser:
		return "Collaborator added to the team."
	case actionAssignTask:
		return "Task assigned to the team."
	default:
		return "Saved."
	}
}
