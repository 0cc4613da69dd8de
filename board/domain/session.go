package domain

import "context"

// Session is the single client-local auth state.
// There is no credential store behind it; LoggedIn is a plain flag that
// sign-up and sign-in flip. Demo-only; real credential verification must
// replace it before this is exposed beyond a demo.
type Session struct {
	LoggedIn bool
	UserName string
}

// SessionRepository persists the single session instance.
type SessionRepository interface {
	// GetSession returns the current session. An unset session is the
	// anonymous zero value, not an error.
	GetSession(ctx context.Context) (Session, error)

	// PutSession stores the session.
	PutSession(ctx context.Context, s Session) error

	// ClearSession resets the session to anonymous.
	ClearSession(ctx context.Context) error
}
