package tui

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/models"
)

// requestTimeout bounds every command-issued API call. It is longer
// than the client's per-request timeout because the board load fans
// out into one call per team.
const requestTimeout = 30 * time.Second

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// loadBoardCmd fetches all teams and joins each with its tasks. A 404
// from the team list means a fresh backend with no teams yet.
func loadBoardCmd(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		teams, err := client.Teams(ctx)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return boardLoadedMsg{gen: gen, err: err}
		}

		columns, err := board.JoinTeamsWithTasks(ctx, teams, client)
		if err != nil {
			return boardLoadedMsg{gen: gen, err: err}
		}
		return boardLoadedMsg{gen: gen, columns: columns}
	}
}

// loadUsersCmd fetches all users and resolves their team names.
func loadUsersCmd(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		users, err := client.Users(ctx)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return usersLoadedMsg{gen: gen, err: err}
		}
		return usersLoadedMsg{gen: gen, members: board.JoinUsersWithTeams(ctx, users, client)}
	}
}

// loadTasksCmd fetches the global task list, which feeds the
// assign-task form with tasks that have no team yet.
func loadTasksCmd(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		tasks, err := client.Tasks(ctx)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return tasksLoadedMsg{gen: gen, err: err}
		}
		return tasksLoadedMsg{gen: gen, tasks: tasks}
	}
}

// projectContentCmd computes the columns for one filter generation.
func projectContentCmd(
	projector *board.Projector,
	gen int,
	filter board.Filter,
	teams []board.Column,
	users []board.Member,
	current models.User,
) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		return contentMsg{gen: gen, columns: projector.Project(ctx, filter, teams, users, current)}
	}
}

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		resp, err := client.Login(ctx, email, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func createUserCmd(client *api.Client, req api.CreateUserRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return mutationDoneMsg{action: actionCreateUser, err: client.CreateUser(ctx, req)}
	}
}

func createTeamCmd(client *api.Client, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return mutationDoneMsg{action: actionCreateTeam, err: client.CreateTeam(ctx, name)}
	}
}

func createTaskCmd(client *api.Client, req api.CreateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return mutationDoneMsg{action: actionCreateTask, err: client.CreateTask(ctx, req)}
	}
}

func assignUserCmd(client *api.Client, teamID, userID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return mutationDoneMsg{action: actionAssignUser, err: client.AssignUserToTeam(ctx, teamID, userID)}
	}
}

func assignTaskCmd(client *api.Client, teamID, taskID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return mutationDoneMsg{action: actionAssignTask, err: client.AssignTaskToTeam(ctx, teamID, taskID)}
	}
}
