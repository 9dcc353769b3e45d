package tui

import (
	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/models"
)

// Async results carry the generation they were requested under so the
// update loop can drop anything that arrives after a reload or a
// filter switch made it stale.

type boardLoadedMsg struct {
	gen     int
	columns []board.Column
	err     error
}

type usersLoadedMsg struct {
	gen     int
	members []board.Member
	err     error
}

type tasksLoadedMsg struct {
	gen   int
	tasks []models.Task
	err   error
}

// contentMsg is a finished projection for one filter generation.
type contentMsg struct {
	gen     int
	columns []board.Column
}

type loginResultMsg struct {
	resp api.LoginResponse
	err  error
}

// mutationDoneMsg reports the outcome of a create or assign call.
type mutationDoneMsg struct {
	action string
	err    error
}

const (
	actionCreateUser = "create_user"
	actionCreateTeam = "create_team"
	actionCreateTask = "create_task"
	actionAssignUser = "assign_user"
	actionAssignTask = "assign_task"
)
