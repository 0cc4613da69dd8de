package application

import (
	"context"
	"errors"
	"testing"

	"github.com/hariyo-app/hariyo/board/persistence"
	"github.com/hariyo-app/hariyo/shared/kv"
)

func newTestSessionService(t *testing.T) *SessionService {
	t.Helper()
	return NewSessionService(persistence.NewSessionRepository(kv.NewMemoryStore()))
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		password string
		confirm  string
		wantErr  error
	}{
		{
			name:     "matching passwords",
			userName: "Asha",
			password: "abc",
			confirm:  "abc",
		},
		{
			name:     "mismatched passwords",
			userName: "Asha",
			password: "abc",
			confirm:  "xyz",
			wantErr:  ErrPasswordMismatch,
		},
		{
			name:     "empty name",
			userName: "  ",
			password: "abc",
			confirm:  "abc",
			wantErr:  ErrEmptyUserName,
		},
		{
			name:     "empty password",
			userName: "Asha",
			password: "",
			confirm:  "",
			wantErr:  ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSessionService(t)
			ctx := context.Background()

			session, err := svc.SignUp(ctx, tt.userName, tt.password, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SignUp() error = %v, want %v", err, tt.wantErr)
			}

			current, cerr := svc.Current(ctx)
			if cerr != nil {
				t.Fatalf("Current() error = %v", cerr)
			}

			if tt.wantErr != nil {
				// Rejected transition retains the prior (anonymous) state
				if current.LoggedIn {
					t.Error("rejected sign-up created a session")
				}
				return
			}

			if !session.LoggedIn || session.UserName != "Asha" {
				t.Errorf("SignUp() session = %+v, want logged-in Asha", session)
			}
			if !current.LoggedIn {
				t.Error("session not persisted")
			}
		})
	}
}

func TestSignIn_ThenSignOut(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	if _, err := svc.SignIn(ctx, "", "pw"); !errors.Is(err, ErrEmptyUserName) {
		t.Errorf("SignIn(empty name) error = %v, want ErrEmptyUserName", err)
	}
	if _, err := svc.SignIn(ctx, "Asha", ""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("SignIn(empty password) error = %v, want ErrEmptyPassword", err)
	}

	session, err := svc.SignIn(ctx, "Asha", "anything")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if !session.LoggedIn {
		t.Error("SignIn() did not authenticate")
	}

	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	current, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if current.LoggedIn {
		t.Error("session survived sign-out")
	}
}
