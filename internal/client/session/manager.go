package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/client/storage"
	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/dmitrijs2005/findash/internal/logging"
)

const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
)

// AuthAPI is the part of the API client the manager needs.
// *client.HTTPClient satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.MessageResponse, error)
}

// State is a snapshot of the session.
type State struct {
	User            *models.User
	IsAuthenticated bool
	// Loading is true until Init has finished.
	Loading bool
}

// Result is the outcome of Login and Register. On failure Message holds the
// server's message when it sent one, otherwise a generic one.
type Result struct {
	Success bool
	Message string
	Error   *client.APIError
}

type Manager struct {
	auth  AuthAPI
	creds *storage.Credentials
	log   logging.Logger

	initOnce sync.Once
	initErr  error

	mu    sync.Mutex
	state State
	token string

	nextSubID int
	subs      map[int]func(State)
}

func NewManager(auth AuthAPI, creds *storage.Credentials, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		auth:  auth,
		creds: creds,
		log:   log,
		state: State{Loading: true},
		subs:  make(map[int]func(State)),
	}
}

// Init restores the session from storage. It runs once; later calls return
// the first call's result. No request is sent to the server: a stored token
// is trusted until a call fails with 401.
func (m *Manager) Init(ctx context.Context) error {
	m.initOnce.Do(func() {
		m.initErr = m.restore(ctx)
	})
	return m.initErr
}

func (m *Manager) restore(ctx context.Context) error {
	token, err := m.creds.Token(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to read stored token", "error", err)
		m.update(func(s *State) bool {
			s.Loading = false
			return true
		})
		return fmt.Errorf("restore session: %w", err)
	}

	var user *models.User
	if token != "" {
		user, err = m.creds.User(ctx)
		if err != nil {
			m.log.Warn(ctx, "stored user record ignored", "error", err)
			user = nil
		}
	}

	m.update(func(s *State) bool {
		s.Loading = false
		if token != "" {
			m.token = token
			s.IsAuthenticated = true
			s.User = user
		}
		return true
	})
	m.log.Debug(ctx, "session restored", "authenticated", token != "")
	return nil
}

// Login authenticates against the backend and, on success, persists the token
// and user and marks the session authenticated. On failure nothing is stored
// and the state is left unauthenticated.
func (m *Manager) Login(ctx context.Context, identifier, password string) Result {
	resp, err := m.auth.Login(ctx, models.LoginRequest{UsernameOrEmail: identifier, Password: password})
	if err == nil && resp.AccessToken == "" {
		err = client.NewError(client.KindServer, "empty access token", nil)
	}
	if err != nil {
		res := failure(err, msgLoginFailed)
		m.log.Error(ctx, "login failed",
			"status", res.Error.StatusCode,
			"message", res.Message,
			"error", err,
		)
		return res
	}

	user := resp.User()
	if err := m.creds.Save(ctx, resp.AccessToken, user); err != nil {
		m.log.Error(ctx, "failed to store credentials", "error", err)
		return Result{Message: msgLoginFailed, Error: client.AsAPIError(err)}
	}

	m.update(func(s *State) bool {
		m.token = resp.AccessToken
		s.IsAuthenticated = true
		s.User = &user
		return true
	})
	m.log.Info(ctx, "logged in", "user", user.Username)
	return Result{Success: true}
}

// Register creates an account. It does not log the user in and writes
// nothing to storage.
func (m *Manager) Register(ctx context.Context, username, email, password string) Result {
	resp, err := m.auth.Register(ctx, models.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		res := failure(err, msgRegistrationFailed)
		m.log.Error(ctx, "registration failed",
			"status", res.Error.StatusCode,
			"message", res.Message,
			"error", err,
		)
		return res
	}
	return Result{Success: true, Message: resp.Message}
}

// Logout removes the stored credentials and resets the session. The
// in-memory state is reset even when storage fails.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.creds.Clear(ctx)
	m.reset()
	if err != nil {
		m.log.Error(ctx, "failed to clear stored credentials", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Invalidate resets the in-memory session without touching storage. It is
// the handler for the API client's "session invalidated" event, which has
// already cleared storage.
func (m *Manager) Invalidate(ctx context.Context) {
	if m.reset() {
		m.log.Info(ctx, "session invalidated by server")
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// AuthorizationHeader returns "Bearer <token>" for the current session, or
// "" when unauthenticated.
func (m *Manager) AuthorizationHeader() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return ""
	}
	return common.BearerValue(m.token)
}

// Subscribe registers fn to receive every state change. fn is called outside
// the manager's lock and must not block for long.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// reset drops the session and reports whether anything changed.
func (m *Manager) reset() bool {
	return m.update(func(s *State) bool {
		if !s.IsAuthenticated && s.User == nil && m.token == "" {
			return false
		}
		m.token = ""
		s.IsAuthenticated = false
		s.User = nil
		return true
	})
}

// update applies fn under the lock and, if fn reports a change, notifies
// subscribers with the new snapshot.
func (m *Manager) update(fn func(s *State) bool) bool {
	m.mu.Lock()
	changed := fn(&m.state)
	if !changed {
		m.mu.Unlock()
		return false
	}
	snap := m.snapshot()
	subs := make([]func(State), 0, len(m.subs))
	for _, s := range m.subs {
		subs = append(subs, s)
	}
	m.mu.Unlock()

	for _, s := range subs {
		s(snap)
	}
	return true
}

func (m *Manager) snapshot() State {
	s := m.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func failure(err error, generic string) Result {
	apiErr := client.AsAPIError(err)
	msg := generic
	if apiErr.Payload != nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return Result{Message: msg, Error: apiErr}
}

func bearerToken(header string) string {
	return strings.TrimPrefix(header, common.BearerScheme+" ")
}
