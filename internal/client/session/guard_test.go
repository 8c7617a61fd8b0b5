package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuseek/docuseek/internal/client/models"
)

func TestGuard(t *testing.T) {
	authed := State{Status: StatusAuthenticated, User: testUser(), Token: "t"}

	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{"anonymous is redirected to login", State{Status: StatusAnonymous}, RedirectLogin},
		{"failed is redirected to login", State{Status: StatusFailed, Err: "x"}, RedirectLogin},
		{"loading defers", State{Status: StatusAuthenticating}, Defer},
		{"authenticated is allowed", authed, Allow},
		{"token without user is not enough", State{Status: StatusAuthenticated, Token: "t"}, RedirectLogin},
		{"user without token is not enough", State{Status: StatusAuthenticated, User: &models.User{ID: "1"}}, RedirectLogin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Guard(tc.state))
		})
	}
}

func TestGuardLogin(t *testing.T) {
	authed := State{Status: StatusAuthenticated, User: testUser(), Token: "t"}

	assert.Equal(t, Allow, GuardLogin(State{Status: StatusAnonymous}))
	assert.Equal(t, Allow, GuardLogin(State{Status: StatusFailed, Err: "x"}))
	assert.Equal(t, Defer, GuardLogin(State{Status: StatusAuthenticating}))
	assert.Equal(t, RedirectHome, GuardLogin(authed))
}
