// Package session holds the client-side authentication session: an explicit
// state machine, the manager driving it against the backend and the
// credential store, and the route-guard decisions derived from it.
package session

import "github.com/docuseek/docuseek/internal/client/models"

// Status is the authentication state machine position.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusFailed         Status = "failed"
)

// State is the full session record. It is a value type: transitions produce
// a new State rather than mutating in place, so a snapshot handed to a
// caller never changes underneath it.
type State struct {
	Status Status
	User   *models.User
	Token  string
	Err    string
}

// IsAuthenticated reports whether the session holds both a user and a
// token. This is derived, never stored, so the invariant
// "authenticated iff user and token present" holds by construction.
func (s State) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// IsLoading reports whether an auth operation is in flight.
func (s State) IsLoading() bool {
	return s.Status == StatusAuthenticating
}

// event is a state machine input. Each event's apply is pure.
type event interface {
	apply(State) State
}

// evStart begins an auth attempt (login, register or refresh). Entering the
// loading state always clears any prior error.
type evStart struct{}

func (evStart) apply(s State) State {
	s.Status = StatusAuthenticating
	s.Err = ""
	return s
}

// evSuccess lands an auth attempt with the backend's user and token.
type evSuccess struct {
	user  *models.User
	token string
}

func (e evSuccess) apply(s State) State {
	s.Status = StatusAuthenticated
	s.User = e.user
	s.Token = e.token
	s.Err = ""
	return s
}

// evFailure rejects an auth attempt. User and token are dropped so the
// session can never look half-authenticated.
type evFailure struct {
	msg string
}

func (e evFailure) apply(s State) State {
	s.Status = StatusFailed
	s.User = nil
	s.Token = ""
	s.Err = e.msg
	return s
}

// evLogout resets to the initial anonymous shape.
type evLogout struct{}

func (evLogout) apply(State) State {
	return State{Status: StatusAnonymous}
}

// evClearError drops the error and nothing else.
type evClearError struct{}

func (evClearError) apply(s State) State {
	s.Err = ""
	return s
}
