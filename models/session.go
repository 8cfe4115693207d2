package models

// Session is the client's view of the authenticated session.
type Session struct {
	// LoggedIn is true once login succeeded or /api/status reported an
	// active session.
	LoggedIn bool

	// Username of the logged in user. Empty when logged out.
	Username string

	// InstanceID is the server instance the client is bound to. It is seeded
	// from the INSTANCE cookie and confirmed by /api/status.
	InstanceID string
}

// Credentials is the request body of /api/register and /api/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
