package board

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/models"
)

// TeamTaskFetcher fetches the tasks of one team. Satisfied by
// *api.Client.
type TeamTaskFetcher interface {
	TeamTasks(ctx context.Context, teamID int) ([]models.Task, error)
}

// TeamFetcher resolves a single team. Satisfied by *api.Client.
type TeamFetcher interface {
	Team(ctx context.Context, id int) (models.Team, error)
}

// JoinTeamsWithTasks builds one task column per team by fetching each
// team's tasks. Fetches fan out concurrently; results are written by
// input index so column order always matches the input team order,
// whatever order responses arrive in.
//
// A not-found response means the team has no tasks yet and yields a
// column with an empty task list; teams are never omitted. Any other
// fetch error fails the whole join and is returned to the caller.
func JoinTeamsWithTasks(ctx context.Context, teams []models.Team, fetcher TeamTaskFetcher) ([]Column, error) {
	columns := make([]Column, len(teams))

	g, ctx := errgroup.WithContext(ctx)
	for i, team := range teams {
		g.Go(func() error {
			tasks, err := fetcher.TeamTasks(ctx, team.ID)
			if err != nil && !errors.Is(err, api.ErrNotFound) {
				return fmt.Errorf("failed to load tasks for team %d: %w", team.ID, err)
			}
			columns[i] = Column{
				ID:    team.ID,
				Name:  team.Name,
				Kind:  KindTasks,
				Tasks: tasks,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return columns, nil
}

// JoinUsersWithTeams attaches a team name to every user. Lookups fan
// out concurrently with order preserved, one per user that has a team
// id; teamless users get NoTeamName without a network call.
//
// A failed lookup degrades that one member to UnknownTeamName instead
// of failing the batch: one bad join must not block the other users.
func JoinUsersWithTeams(ctx context.Context, users []models.User, fetcher TeamFetcher) []Member {
	members := make([]Member, len(users))

	g, ctx := errgroup.WithContext(ctx)
	for i, user := range users {
		if !user.HasTeam() {
			members[i] = Member{User: user, TeamName: NoTeamName}
			continue
		}
		g.Go(func() error {
			name := UnknownTeamName
			if team, err := fetcher.Team(ctx, user.TeamID); err == nil {
				name = team.Name
			}
			members[i] = Member{User: user, TeamName: name}
			return nil
		})
	}
	// Goroutines never return an error; Wait only synchronizes.
	g.Wait()

	return members
}
