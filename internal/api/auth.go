package api

import (
	"context"

	"github.com/pmarcondes/tarefa/internal/models"
)

// LoginResponse is the payload returned by POST /login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and the authenticated user.
// Bad credentials surface as ErrUnauthorized. Login is the only call
// issued without a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}
