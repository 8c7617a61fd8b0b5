package session

// Decision is the outcome of a route guard check.
type Decision int

const (
	// Allow renders the requested view unchanged.
	Allow Decision = iota
	// Defer renders nothing conclusive while an auth operation settles.
	Defer
	// RedirectLogin sends an unauthenticated viewer to the login view.
	RedirectLogin
	// RedirectHome sends an already-authenticated viewer away from the
	// login view.
	RedirectHome
)

// Guard decides whether a protected view may be shown. Pure function of the
// state; the caller re-evaluates it on every state change.
func Guard(s State) Decision {
	if s.IsLoading() {
		return Defer
	}
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	return Allow
}

// GuardLogin is the symmetric guard for the login view itself.
func GuardLogin(s State) Decision {
	if s.IsLoading() {
		return Defer
	}
	if s.IsAuthenticated() {
		return RedirectHome
	}
	return Allow
}
