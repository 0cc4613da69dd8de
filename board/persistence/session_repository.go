package persistence

import (
	"context"
	"fmt"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
)

var _ domain.SessionRepository = (*KVSessionRepository)(nil)

// KVSessionRepository stores the single session under the isLoggedIn and
// userName keys.
type KVSessionRepository struct {
	store kv.Store
}

// NewSessionRepository creates a new KVSessionRepository.
func NewSessionRepository(store kv.Store) *KVSessionRepository {
	return &KVSessionRepository{store: store}
}

// GetSession returns the current session; unset state is anonymous.
func (r *KVSessionRepository) GetSession(ctx context.Context) (domain.Session, error) {
	flag, found, err := r.store.Get(ctx, keyIsLoggedIn)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to read login flag: %w", err)
	}
	if !found || flag != "true" {
		return domain.Session{}, nil
	}

	name, _, err := r.store.Get(ctx, keyUserName)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to read user name: %w", err)
	}

	return domain.Session{LoggedIn: true, UserName: name}, nil
}

// PutSession stores the session.
func (r *KVSessionRepository) PutSession(ctx context.Context, s domain.Session) error {
	flag := "false"
	if s.LoggedIn {
		flag = "true"
	}

	if err := r.store.Set(ctx, keyIsLoggedIn, flag); err != nil {
		return fmt.Errorf("failed to write login flag: %w", err)
	}
	if err := r.store.Set(ctx, keyUserName, s.UserName); err != nil {
		return fmt.Errorf("failed to write user name: %w", err)
	}

	return nil
}

// ClearSession resets the session to anonymous.
func (r *KVSessionRepository) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyIsLoggedIn); err != nil {
		return fmt.Errorf("failed to clear login flag: %w", err)
	}
	if err := r.store.Delete(ctx, keyUserName); err != nil {
		return fmt.Errorf("failed to clear user name: %w", err)
	}

	return nil
}
