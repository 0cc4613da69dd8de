package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/rs/zerolog/log"
)

var (
	// ErrEmptyUserName indicates a sign-up or sign-in with no name.
	ErrEmptyUserName = errors.New("user name is required")
	// ErrEmptyPassword indicates a sign-up or sign-in with no password.
	ErrEmptyPassword = errors.New("password is required")
	// ErrPasswordMismatch indicates sign-up confirmation did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// SessionService handles the Anonymous ⇄ Authenticated transitions.
//
// There is no credential store: any non-empty, confirmable input succeeds
// and the password is discarded. Demo-only semantics; real credential
// verification must replace this before any non-demo deployment.
type SessionService struct {
	sessions domain.SessionRepository
}

// NewSessionService creates a SessionService over the session repository.
func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// SignUp authenticates a new user. The confirmation must match the
// password; on mismatch the prior state is retained.
func (s *SessionService) SignUp(ctx context.Context, userName, password, confirmPassword string) (domain.Session, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return domain.Session{}, ErrEmptyUserName
	}
	if password == "" {
		return domain.Session{}, ErrEmptyPassword
	}
	if password != confirmPassword {
		return domain.Session{}, ErrPasswordMismatch
	}

	return s.authenticate(ctx, userName)
}

// SignIn authenticates with any non-empty name and password.
func (s *SessionService) SignIn(ctx context.Context, userName, password string) (domain.Session, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return domain.Session{}, ErrEmptyUserName
	}
	if password == "" {
		return domain.Session{}, ErrEmptyPassword
	}

	return s.authenticate(ctx, userName)
}

func (s *SessionService) authenticate(ctx context.Context, userName string) (domain.Session, error) {
	session := domain.Session{LoggedIn: true, UserName: userName}
	if err := s.sessions.PutSession(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info().Str("user", userName).Msg("Session created")
	return session, nil
}

// SignOut clears the session back to anonymous.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	log.Info().Msg("Session cleared")
	return nil
}

// Current returns the current session state.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	return s.sessions.GetSession(ctx)
}
