package board

import (
	"context"
	"fmt"

	"github.com/pmarcondes/tarefa/internal/models"
)

// Filter selects which projection of the board to show.
type Filter int

const (
	FilterAllTasks Filter = iota
	FilterMyTeam
	FilterMyTasks
	FilterCollaborators
)

// Filters lists every filter in tab order.
func Filters() []Filter {
	return []Filter{FilterAllTasks, FilterMyTeam, FilterMyTasks, FilterCollaborators}
}

// Label returns the tab caption for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterAllTasks:
		return "All Tasks"
	case FilterMyTeam:
		return "My Team"
	case FilterMyTasks:
		return "My Tasks"
	case FilterCollaborators:
		return "Collaborators"
	default:
		return "Unknown"
	}
}

// UserTaskFetcher fetches the tasks assigned to one user. Satisfied by
// *api.Client.
type UserTaskFetcher interface {
	UserTasks(ctx context.Context, userID int) ([]models.Task, error)
}

// Projector computes the columns to render for a filter. It is
// stateless apart from the injected fetcher; re-running it with the
// same inputs yields the same output, so callers recompute the whole
// projection whenever the filter or an aggregate changes.
type Projector struct {
	userTasks UserTaskFetcher
}

// NewProjector creates a projector. The fetcher backs the "my tasks"
// filter, the one projection that cannot be computed from team-scoped
// data alone.
func NewProjector(userTasks UserTaskFetcher) *Projector {
	return &Projector{userTasks: userTasks}
}

// Project returns the ordered columns for the filter.
//
// Projection never fails: the "my tasks" fetch is the only suspension
// point and its errors degrade to an empty column, because the board
// must keep rendering whatever happens on that path.
func (p *Projector) Project(ctx context.Context, filter Filter, teams []Column, users []Member, current models.User) []Column {
	switch filter {
	case FilterAllTasks:
		return teams
	case FilterMyTeam:
		return projectMyTeam(teams, current)
	case FilterMyTasks:
		return p.projectMyTasks(ctx, teams, current)
	case FilterCollaborators:
		return projectCollaborators(users)
	default:
		return nil
	}
}

// projectMyTeam returns the single column matching the session user's
// team, or nothing when the user has no team or the team is not on the
// board.
func projectMyTeam(teams []Column, current models.User) []Column {
	if !current.HasTeam() {
		return nil
	}
	for _, col := range teams {
		if col.ID == current.TeamID {
			return []Column{col}
		}
	}
	return nil
}

// projectMyTasks wraps the user-scoped task list in a single column
// named after the user's team.
func (p *Projector) projectMyTasks(ctx context.Context, teams []Column, current models.User) []Column {
	if !current.HasTeam() {
		return nil
	}

	name := teamName(teams, current.TeamID)

	tasks, err := p.userTasks.UserTasks(ctx, current.ID)
	if err != nil {
		// Degrade to an empty column; the caller may log, the UI
		// must not hard-fail here.
		tasks = nil
	}

	return []Column{{
		ID:    current.TeamID,
		Name:  name,
		Kind:  KindTasks,
		Tasks: tasks,
	}}
}

// teamName resolves a team name from the joined columns, falling back
// to a synthetic label when the team is not present locally.
func teamName(teams []Column, teamID int) string {
	for _, col := range teams {
		if col.ID == teamID {
			return col.Name
		}
	}
	return fmt.Sprintf("Team %d", teamID)
}

// projectCollaborators groups users into one people column per team.
// Column order is first-seen team order while iterating users; people
// order within a column follows user order. Teamless users share a
// single column keyed by team id 0.
func projectCollaborators(users []Member) []Column {
	byTeam := make(map[int]int) // team id -> index into columns
	var columns []Column

	for _, member := range users {
		teamID := member.User.TeamID
		idx, ok := byTeam[teamID]
		if !ok {
			idx = len(columns)
			byTeam[teamID] = idx
			columns = append(columns, Column{
				ID:   teamID,
				Name: member.TeamName,
				Kind: KindPeople,
			})
		}
		columns[idx].People = append(columns[idx].People, personFromUser(member.User))
	}

	return columns
}
