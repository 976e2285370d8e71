package api

import (
	"context"
	"net/url"

	"github.com/formtrack/formtrack/internal/domain/entity"
)

type userListResponse struct {
	Users []entity.User `json:"users"`
}

// ListUsers fetches users, optionally narrowed to a role
func (c *Client) ListUsers(ctx context.Context, role entity.Role) ([]entity.User, error) {
	var query url.Values
	if role != "" {
		query = url.Values{"role": []string{role.String()}}
	}

	var resp userListResponse
	if err := c.getJSON(ctx, "/users", query, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// CreateUserInput holds the fields for a new user
type CreateUserInput struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     entity.Role `json:"role"`
}

// CreateUser creates a user and returns the stored record
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	var user entity.User
	if err := c.postJSON(ctx, "/users", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
