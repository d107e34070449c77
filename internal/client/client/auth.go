package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// Login posts credentials to /auth/login. The response interceptors are not
// applied: a 401 here means bad credentials, not an expired session.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.send(ctx, http.MethodPost, req, &out, callOptions{bypassResponse: true}, "auth", "login"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register posts a new account to /auth/register.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.send(ctx, http.MethodPost, req, &out, callOptions{bypassResponse: true}, "auth", "register"); err != nil {
		return nil, err
	}
	return &out, nil
}
