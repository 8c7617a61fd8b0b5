// Package api provides HTTP access to the docuseek backend: typed endpoint
// calls, bearer-token attachment, and the global 401 policy.
package api

import (
	"context"

	"github.com/docuseek/docuseek/internal/client/models"
)

// Client is the transport surface the rest of the client programs against.
// Services take this interface so tests can substitute a fake without
// touching global state.
type Client interface {
	// Auth endpoints.
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	RefreshToken(ctx context.Context) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.User, error)

	// HealthCheck probes backend liveness.
	HealthCheck(ctx context.Context) (*models.HealthStatus, error)

	// OAuthURL builds the browser-redirect URL for a third-party sign-in
	// provider. Pure string construction, no I/O.
	OAuthURL(provider string) string

	// Generic verbs used by presentation components.
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error

	// Token management. The client keeps exactly one mutable token in
	// memory and never reads or writes durable storage; the session
	// manager owns persistence and hands the value over explicitly.
	SetToken(token string)
	ClearToken()
	Token() string

	// OnUnauthorized installs the hook invoked whenever any response comes
	// back 401. The client clears its in-memory token first, then calls
	// the hook, then returns the original error to the caller.
	OnUnauthorized(fn func())
}

// GetJSON issues a GET and decodes the response body into T.
func GetJSON[T any](ctx context.Context, c Client, path string) (T, error) {
	var out T
	err := c.Get(ctx, path, &out)
	return out, err
}

// PostJSON issues a POST with a JSON body and decodes the response into T.
func PostJSON[T any](ctx context.Context, c Client, path string, body any) (T, error) {
	var out T
	err := c.Post(ctx, path, body, &out)
	return out, err
}
