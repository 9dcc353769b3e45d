package api

import (
	"context"
	"fmt"

	"github.com/pmarcondes/tarefa/internal/models"
)

// Tasks fetches every task. Feeds the assign-task picker, which offers
// the tasks not yet attached to a team.
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.get(ctx, "/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UserTasks fetches the tasks assigned to one user. Backs the "my
// tasks" filter, which is user-scoped rather than team-scoped.
func (c *Client) UserTasks(ctx context.Context, userID int) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.get(ctx, fmt.Sprintf("/user/%d/tasks", userID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTaskRequest is the body of POST /task.
type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Start       string `json:"start"`
	Deadline    string `json:"deadline"`
}

// CreateTask creates an unassigned task.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) error {
	return c.post(ctx, "/task", req, nil)
}
