package api

import (
	"context"
	"fmt"

	"github.com/pmarcondes/tarefa/internal/models"
)

// Teams fetches every team.
func (c *Client) Teams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := c.get(ctx, "/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Team fetches a single team by id. Used to resolve a user's team name
// during the collaborators join.
func (c *Client) Team(ctx context.Context, id int) (models.Team, error) {
	var team models.Team
	if err := c.get(ctx, fmt.Sprintf("/team/%d", id), &team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// TeamTasks fetches the tasks belonging to one team. A 404 is returned
// as ErrNotFound and means the team has no tasks yet.
func (c *Client) TeamTasks(ctx context.Context, teamID int) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.get(ctx, fmt.Sprintf("/team/%d/tasks", teamID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

type createTeamRequest struct {
	Name string `json:"name"`
}

// CreateTeam creates a team. Errors are returned to the caller so the
// form can report the failure.
func (c *Client) CreateTeam(ctx context.Context, name string) error {
	return c.post(ctx, "/team", createTeamRequest{Name: name}, nil)
}

// AssignUserToTeam moves a user into a team.
func (c *Client) AssignUserToTeam(ctx context.Context, teamID, userID int) error {
	return c.put(ctx, fmt.Sprintf("/team/%d/user/%d", teamID, userID))
}

// AssignTaskToTeam moves a task into a team.
func (c *Client) AssignTaskToTeam(ctx context.Context, teamID, taskID int) error {
	return c.put(ctx, fmt.Sprintf("/team/%d/task/%d", teamID, taskID))
}
