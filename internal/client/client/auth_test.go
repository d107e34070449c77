package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	var got models.LoginRequest
	b := newBackend(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(w, 200, map[string]any{
				"accessToken": "jwt", "tokenType": "Bearer", "id": 5, "username": "alice", "email": "a@example.org",
			})
		})
	})
	c := newTestClient(t, b, &fakeCreds{})

	resp, err := c.Login(context.Background(), models.LoginRequest{UsernameOrEmail: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.LoginRequest{UsernameOrEmail: "alice", Password: "pw"}, got)
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, models.User{ID: 5, Username: "alice", Email: "a@example.org"}, resp.User())
	assert.Equal(t, "application/json", b.header("POST /api/auth/login").Get("Content-Type"))
}

func TestLogin_401_DoesNotInvalidateSession(t *testing.T) {
	b := newBackend(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		})
	})
	creds := &fakeCreds{token: "keep-me"}
	c := newTestClient(t, b, creds)

	notified := false
	c.OnSessionInvalidated(func(context.Context) { notified = true })

	_, err := c.Login(context.Background(), models.LoginRequest{UsernameOrEmail: "alice", Password: "bad"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", AsAPIError(err).Message)
	assert.False(t, notified)
	assert.Zero(t, creds.cleared())
}

func TestRegister_ReturnsServerMessage(t *testing.T) {
	b := newBackend(t, func(r chi.Router) {
		r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			var in models.RegisterRequest
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Username == "taken" {
				writeJSON(w, 400, map[string]string{"message": "Username is already taken!"})
				return
			}
			writeJSON(w, 201, map[string]string{"message": "User registered successfully"})
		})
	})
	c := newTestClient(t, b, &fakeCreds{})
	ctx := context.Background()

	resp, err := c.Register(ctx, models.RegisterRequest{Username: "bob", Email: "b@example.org", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.Message)

	_, err = c.Register(ctx, models.RegisterRequest{Username: "taken", Email: "t@example.org", Password: "pw"})
	require.ErrorIs(t, err, ErrServer)
	assert.Equal(t, "Username is already taken!", AsAPIError(err).Message)
}
