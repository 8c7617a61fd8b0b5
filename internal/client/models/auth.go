package models

// Credentials is the login form payload. The password lives only for the
// duration of the submit call and is never persisted.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterData is the registration form payload.
type RegisterData struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName,omitempty" validate:"omitempty"`
}

// AuthResponse is the common response shape of the login, register and
// refresh endpoints.
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
