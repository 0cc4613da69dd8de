package domain

import (
	"context"
	"errors"
	"strings"
)

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Language is the site language preference.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageNepali  Language = "ne"
)

var (
	// ErrInvalidTheme indicates an unsupported theme value.
	ErrInvalidTheme = errors.New("theme must be dark or light")
	// ErrInvalidLanguage indicates an unsupported language value.
	ErrInvalidLanguage = errors.New("language must be en or ne")
)

// Preferences are the independently persisted user settings.
// There is no relational integrity between them.
type Preferences struct {
	Theme               Theme
	Language            Language
	OnboardingCompleted bool
}

// DefaultPreferences returns the preferences of a fresh client.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeLight,
		Language: LanguageEnglish,
	}
}

// ParseTheme validates a raw theme value.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", ErrInvalidTheme
	}
}

// ParseLanguage validates a raw language value.
func ParseLanguage(raw string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageNepali:
		return LanguageNepali, nil
	default:
		return "", ErrInvalidLanguage
	}
}

// PreferencesRepository persists each preference under its own key.
type PreferencesRepository interface {
	GetPreferences(ctx context.Context) (Preferences, error)
	SetTheme(ctx context.Context, t Theme) error
	SetLanguage(ctx context.Context, l Language) error
	SetOnboardingCompleted(ctx context.Context, done bool) error
}
