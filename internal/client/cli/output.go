package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/findash/internal/client/client"
)

var errUsage = errors.New("usage")

func (a *App) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return a.fail(err)
	}
	a.println(string(b))
	return nil
}

// fail prints err in a user-facing form and returns it.
func (a *App) fail(err error) error {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Kind == client.KindTransport:
		a.println("Error: request failed:", apiErr.Error())
	case errors.As(err, &apiErr) && apiErr.Kind == client.KindUnauthorized:
		a.println("Error: not authorized:", apiErr.Message)
	case errors.As(err, &apiErr):
		a.println(fmt.Sprintf("Error (%d): %s", apiErr.StatusCode, apiErr.Message))
	default:
		a.println("Error:", err)
	}
	return err
}

// usage prints the correct form of a command and returns errUsage.
func (a *App) usage(form string) error {
	a.println("Usage:", form)
	return errUsage
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
