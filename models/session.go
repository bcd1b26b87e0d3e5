package models

// Session is the cached authenticated identity held by the client: the user
// record returned at login plus the bearer token proving it. A session is
// either fully present (both user and token set) or absent; partial state is
// treated as absent and cleared by the local store.
type Session struct {
	// User is the authenticated user's record as returned by the backend.
	User User `json:"user"`

	// Token is the opaque bearer credential attached to authenticated
	// requests. An empty token means the session is absent.
	Token string `json:"token"`

	// RememberMe mirrors the login-form preference; when set, the backend
	// issues a long-lived token.
	RememberMe bool `json:"remember_me,omitempty"`
}

// Active reports whether the session is fully present.
func (s Session) Active() bool {
	return s.Token != "" && s.User.ID != 0
}

// LoginResult is the outcome of a login attempt. Failure is carried in the
// result rather than an error so callers render one shape for both branches.
type LoginResult struct {
	Success bool   `json:"success"`
	User    User   `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}
