package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/docuseek/docuseek/internal/client/models"
)

// Backend endpoint paths.
const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathRefresh  = "/api/auth/refresh"
	pathLogout   = "/api/auth/logout"
	pathProfile  = "/api/auth/profile"
	pathOAuth    = "/api/auth/oauth/"
	pathHealth   = "/api/health"
)

// HTTPClient is the Client implementation over net/http.
//
// It deliberately sets no request timeout of its own and relies on the
// transport's defaults; callers control deadlines through ctx if they need
// them.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	mu             sync.Mutex
	token          string
	onUnauthorized func()
}

// NewHTTPClient builds a client for the given base URL. A nil hc falls back
// to a plain http.Client.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *HTTPClient) unauthorizedHook() func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onUnauthorized
}

// do issues one request and decodes a 2xx response body into out (when out
// is non-nil). A 401 anywhere clears the in-memory token and fires the
// unauthorized hook before the error is returned; the session manager's
// hook takes care of durable state and navigation.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
		if fn := c.unauthorizedHook(); fn != nil {
			fn()
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, pathLogin, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, pathRegister, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshToken exchanges the current token for a fresh one. The request has
// no body; the backend identifies the session from the bearer token.
func (c *HTTPClient) RefreshToken(ctx context.Context) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, pathRefresh, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, pathLogout, nil, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, pathProfile, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) HealthCheck(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus
	if err := c.do(ctx, http.MethodGet, pathHealth, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *HTTPClient) OAuthURL(provider string) string {
	return c.baseURL + pathOAuth + provider
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}
