package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/docuseek/docuseek/internal/client/api"
	"github.com/docuseek/docuseek/internal/client/credentials"
	"github.com/docuseek/docuseek/internal/client/models"
	"github.com/docuseek/docuseek/internal/logging"
)

// Fallback messages used when a backend failure carries no structured
// detail.
const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
)

// Navigator switches the active view. The manager only ever needs to force
// a viewer back to the login screen; everything else is the guard's job.
type Navigator interface {
	ShowLogin()
}

// Manager is the single source of truth for authentication status. It owns
// the credential store: the API client never touches durable storage and
// only receives the token value through SetToken.
//
// Operations are not de-duplicated: two overlapping logins both run and the
// later completion wins. Callers are expected to hold off while IsLoading.
type Manager struct {
	store  credentials.Store
	client api.Client
	log    logging.Logger
	nav    Navigator

	mu       sync.Mutex
	state    State
	restored bool
}

// NewManager wires the manager to its collaborators and installs the 401
// hook into the client.
func NewManager(store credentials.Store, client api.Client, log logging.Logger, nav Navigator) *Manager {
	m := &Manager{
		store:  store,
		client: client,
		log:    log,
		nav:    nav,
		state:  State{Status: StatusAnonymous},
	}
	client.OnUnauthorized(m.HandleUnauthorized)
	return m
}

// dispatch applies one event as a single indivisible state update and
// returns the resulting snapshot.
func (m *Manager) dispatch(ev event) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = ev.apply(m.state)
	return m.state
}

// State returns a snapshot of the current session.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Restore rehydrates the session from the credential store. It runs once
// per process; later calls are no-ops.
//
// When both the token and the user record are present the session is
// optimistically marked authenticated right away (no loading flash for the
// common still-valid case) and the token is verified against the profile
// endpoint in the background; a rejected token triggers the same teardown
// as a logout.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	if m.restored {
		m.mu.Unlock()
		return
	}
	m.restored = true
	m.mu.Unlock()

	token, raw, ok, err := credentials.LoadPair(ctx, m.store)
	if err != nil {
		m.log.Error(ctx, "failed to read stored credentials", "error", err)
		return
	}
	if !ok {
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		m.log.Warn(ctx, "stored user record is corrupt, discarding session", "error", err)
		m.teardown(ctx)
		return
	}

	m.client.SetToken(token)
	m.dispatch(evSuccess{user: &user, token: token})

	go func() {
		if _, err := m.client.GetProfile(ctx); err != nil {
			m.log.Warn(ctx, "stored token rejected by backend", "error", err)
			m.teardown(ctx)
			return
		}
		m.log.Debug(ctx, "stored token verified", "user", user.Email)
	}()
}

// Login authenticates with email and password. On success the user and
// token are persisted and installed into the API client; on failure the
// session moves to the failed state with the backend's message and the
// error is returned so the form can keep its own handling.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	m.dispatch(evStart{})

	resp, err := m.client.Login(ctx, creds)
	if err != nil {
		m.dispatch(evFailure{msg: api.Detail(err, msgLoginFailed)})
		return err
	}

	m.establish(ctx, resp)
	return nil
}

// Register creates an account. Same contract shape as Login.
func (m *Manager) Register(ctx context.Context, data models.RegisterData) error {
	m.dispatch(evStart{})

	resp, err := m.client.Register(ctx, data)
	if err != nil {
		m.dispatch(evFailure{msg: api.Detail(err, msgRegisterFailed)})
		return err
	}

	m.establish(ctx, resp)
	return nil
}

// Logout tears the session down. The server-side logout call is best
// effort: its failure is logged and the local teardown proceeds regardless.
// Logout never returns an error.
func (m *Manager) Logout(ctx context.Context) {
	if m.State().Token != "" {
		if err := m.client.Logout(ctx); err != nil {
			m.log.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	m.teardown(ctx)
}

// RefreshToken replaces the current user and token with fresh ones. On
// failure it performs the full logout teardown and returns the error.
func (m *Manager) RefreshToken(ctx context.Context) error {
	m.dispatch(evStart{})

	resp, err := m.client.RefreshToken(ctx)
	if err != nil {
		m.teardown(ctx)
		return err
	}

	m.establish(ctx, resp)
	return nil
}

// ClearError drops the session error. Everything else is untouched.
func (m *Manager) ClearError() {
	m.dispatch(evClearError{})
}

// CompleteOAuth installs a session delivered through a social-login
// callback redirect, bypassing the password flow.
func (m *Manager) CompleteOAuth(ctx context.Context, token string, user *models.User) {
	m.establish(ctx, &models.AuthResponse{User: *user, AccessToken: token})
}

// HandleUnauthorized is the hook the API client fires on any 401 response:
// full teardown plus navigation to the login screen. Any 401 invalidates
// the whole session, including one from a stale in-flight request.
func (m *Manager) HandleUnauthorized() {
	ctx := context.Background()
	m.teardown(ctx)
	if m.nav != nil {
		m.nav.ShowLogin()
	}
}

// establish records a successful authentication: persist the pair, hand the
// token to the client, move the machine to authenticated. A storage write
// failure is logged but does not fail the login — the in-memory session is
// still valid, it just will not survive a restart.
func (m *Manager) establish(ctx context.Context, resp *models.AuthResponse) {
	raw, err := json.Marshal(resp.User)
	if err == nil {
		err = m.store.SetPair(ctx, resp.AccessToken, raw)
	}
	if err != nil {
		m.log.Error(ctx, "failed to persist session", "error", err)
	}

	m.client.SetToken(resp.AccessToken)
	m.dispatch(evSuccess{user: &resp.User, token: resp.AccessToken})
}

// teardown is the single path back to anonymous: clear the client token,
// delete both durable keys, reset the state. Used by logout, refresh
// failure, rejected rehydration and the 401 hook.
func (m *Manager) teardown(ctx context.Context) {
	m.client.ClearToken()
	if err := m.store.DeletePair(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored credentials", "error", err)
	}
	m.dispatch(evLogout{})
}
