package persistence

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
)

var _ domain.PreferencesRepository = (*KVPreferencesRepository)(nil)

// KVPreferencesRepository stores each preference independently under its
// own key. Unset or invalid stored values fall back to defaults.
type KVPreferencesRepository struct {
	store kv.Store
}

// NewPreferencesRepository creates a new KVPreferencesRepository.
func NewPreferencesRepository(store kv.Store) *KVPreferencesRepository {
	return &KVPreferencesRepository{store: store}
}

// GetPreferences returns the stored preferences, defaulting each field
// that is unset or invalid.
func (r *KVPreferencesRepository) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	if raw, found, err := r.store.Get(ctx, keyTheme); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to read theme: %w", err)
	} else if found {
		if theme, err := domain.ParseTheme(raw); err == nil {
			prefs.Theme = theme
		}
	}

	if raw, found, err := r.store.Get(ctx, keySiteLang); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to read language: %w", err)
	} else if found {
		if lang, err := domain.ParseLanguage(raw); err == nil {
			prefs.Language = lang
		}
	}

	if raw, found, err := r.store.Get(ctx, keyOnboardCompleted); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to read onboarding flag: %w", err)
	} else if found {
		if done, err := strconv.ParseBool(raw); err == nil {
			prefs.OnboardingCompleted = done
		}
	}

	return prefs, nil
}

// SetTheme persists the theme preference.
func (r *KVPreferencesRepository) SetTheme(ctx context.Context, t domain.Theme) error {
	if err := r.store.Set(ctx, keyTheme, string(t)); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}

// SetLanguage persists the language preference.
func (r *KVPreferencesRepository) SetLanguage(ctx context.Context, l domain.Language) error {
	if err := r.store.Set(ctx, keySiteLang, string(l)); err != nil {
		return fmt.Errorf("failed to write language: %w", err)
	}
	return nil
}

// SetOnboardingCompleted persists the onboarding flag.
func (r *KVPreferencesRepository) SetOnboardingCompleted(ctx context.Context, done bool) error {
	if err := r.store.Set(ctx, keyOnboardCompleted, strconv.FormatBool(done)); err != nil {
		return fmt.Errorf("failed to write onboarding flag: %w", err)
	}
	return nil
}
