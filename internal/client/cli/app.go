package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/config"
	"github.com/dmitrijs2005/findash/internal/client/session"
	"github.com/dmitrijs2005/findash/internal/client/storage"
	"github.com/dmitrijs2005/findash/internal/filex"
	"github.com/dmitrijs2005/findash/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	api     *client.HTTPClient
	ai      *client.AIClient
	session *session.Manager
	reader  *bufio.Reader
	out     io.Writer

	// loginRequired is set when the server invalidated the session; the REPL
	// sends the user to the login prompt before the next command.
	loginRequired atomic.Bool

	closers []func() error
}

// NewApp opens the local storage and builds the clients and session manager.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}
	path, err := filex.EnsureParentDir(c.StoragePath)
	if err != nil {
		log.Error(ctx, "error preparing storage directory", "path", c.StoragePath, "error", err)
		return nil, err
	}

	store, err := storage.Open(ctx, path)
	if err != nil {
		log.Error(ctx, "error initializing storage", "path", c.StoragePath, "error", err)
		return nil, err
	}

	a, err := newApp(c, store, log, os.Stdin, os.Stdout)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	a.closers = append(a.closers, store.Close)
	return a, nil
}

func newApp(c *config.Config, store storage.Store, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}
	creds := storage.NewCredentials(store)

	api, err := client.New(c.APIBaseURL,
		client.WithCredentials(creds),
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "api")),
	)
	if err != nil {
		return nil, err
	}

	ai, err := client.NewAIClient(c.AIServiceURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "ai")),
	)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:  c,
		log:     log,
		api:     api,
		ai:      ai,
		session: session.NewManager(api, creds, log.With("component", "session")),
		reader:  bufio.NewReader(in),
		out:     out,
	}

	unsubManager := api.OnSessionInvalidated(a.session.Invalidate)
	unsubApp := api.OnSessionInvalidated(a.onSessionInvalidated)
	a.closers = append(a.closers,
		func() error { unsubManager(); return nil },
		func() error { unsubApp(); return nil },
	)
	return a, nil
}

// Run restores the session, then serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.println("Welcome to findash CLI (type 'help' for commands)")
	a.println("Loading...")
	if err := a.session.Init(ctx); err != nil {
		a.println("Could not restore the previous session:", err)
	}

	if st := a.session.State(); st.IsAuthenticated {
		a.println("Welcome back" + userSuffix(st) + ".")
	} else {
		a.println("You are not logged in. Type 'login' or 'register'.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the storage and drops the event subscriptions.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// onSessionInvalidated arms the login redirect. The notice is printed once per
// invalidation even when several calls are rejected together.
func (a *App) onSessionInvalidated(ctx context.Context) {
	if a.loginRequired.Swap(true) {
		return
	}
	a.println("Your session has expired. Please log in again.")
}

// takeLoginRedirect reports, once, that the session was invalidated.
func (a *App) takeLoginRedirect() bool {
	return a.loginRequired.Swap(false)
}

func (a *App) getStatus() string {
	st := a.session.State()
	if !st.IsAuthenticated {
		return ""
	}
	if st.User != nil && st.User.Username != "" {
		return fmt.Sprintf("(%s)", st.User.Username)
	}
	return "(logged in)"
}

func userSuffix(st session.State) string {
	if st.User == nil || st.User.Username == "" {
		return ""
	}
	return ", " + st.User.Username
}
