package api

import (
	"context"

	"github.com/pmarcondes/tarefa/internal/models"
)

// Users fetches every collaborator.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUserRequest is the body of POST /user.
type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Permission string `json:"permission"`
}

// CreateUser creates a collaborator.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) error {
	return c.post(ctx, "/user", req, nil)
}
