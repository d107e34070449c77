package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/findash/internal/common"
)

// Register prompts for username, email and password and creates an account.
// It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.fail(err)
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	res := a.session.Register(ctx, username, email, string(password))
	if !res.Success {
		a.println("Registration failed:", res.Message)
		return res.Error
	}

	msg := res.Message
	if msg == "" {
		msg = "Registered."
	}
	a.println(msg, "You can now log in.")
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	res := a.session.Login(ctx, identifier, string(password))
	if !res.Success {
		a.println("Login failed:", res.Message)
		return res.Error
	}

	a.loginRequired.Store(false)
	a.println("Logged in" + userSuffix(a.session.State()) + ".")
	return nil
}

// Logout drops the session and the stored credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return a.fail(err)
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the session user and, when the token is a JWT, its subject
// and expiry as the token claims them.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if !st.IsAuthenticated {
		a.println("Not logged in.")
		return nil
	}

	info := map[string]any{"authenticated": true}
	if st.User != nil {
		info["user"] = st.User
	}

	claims, err := a.session.TokenClaims()
	switch {
	case err == nil:
		if claims.Subject != "" {
			info["subject"] = claims.Subject
		}
		if claims.ExpiresAt != nil {
			info["expires_at"] = claims.ExpiresAt.Time.Format(time.RFC3339)
		}
	case errors.Is(err, common.ErrNoToken):
	default:
		a.log.Debug(ctx, "token claims unavailable", "error", err)
	}

	return a.printJSON(info)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
