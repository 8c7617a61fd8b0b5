package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/docuseek/docuseek/internal/client/models"
)

var (
	errCallbackMissingParams = errors.New("callback is missing token or user parameters")
	errCallbackBadUser       = errors.New("callback user payload is invalid")
)

// OAuth prints the browser-redirect URL for a third-party sign-in provider.
// The user completes the flow in a browser and feeds the final redirect
// back through the callback command.
func (a *App) OAuth(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: oauth <provider>   (e.g. google, github, microsoft)")
		return nil
	}
	printlnFn("Open this URL in your browser to sign in:")
	printlnFn(a.client.OAuthURL(args[0]))
	printlnFn("Then paste the redirect URL here with: callback <url>")
	return nil
}

// Callback completes a social sign-in from the redirect URL the provider
// produced. A malformed or incomplete callback is never surfaced as a
// failure: the user simply stays on the login screen with an explanation.
func (a *App) Callback(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: callback <url>")
		return nil
	}

	token, user, err := parseCallbackURL(args[0])
	if err != nil {
		a.log.Warn(ctx, "rejected oauth callback", "error", err)
		printlnFn("Sign-in could not be completed, please try again")
		a.ShowLogin()
		return nil
	}

	a.sess.CompleteOAuth(ctx, token, user)
	printlnFn("Signed in as", user.Email)
	return nil
}

// parseCallbackURL extracts the token and the serialized user record from a
// social-login callback redirect of the form
//
//	https://host/auth/callback?token=<token>&user=<url-encoded user JSON>
func parseCallbackURL(raw string) (string, *models.User, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", nil, err
	}

	q := u.Query()
	token := q.Get("token")
	userParam := q.Get("user")
	if token == "" || userParam == "" {
		return "", nil, errCallbackMissingParams
	}

	var user models.User
	if err := json.Unmarshal([]byte(userParam), &user); err != nil {
		return "", nil, errCallbackBadUser
	}
	if user.ID == "" || !user.Role.Valid() {
		return "", nil, errCallbackBadUser
	}
	return token, &user, nil
}
