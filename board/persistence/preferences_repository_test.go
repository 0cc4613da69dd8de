package persistence

import (
	"context"
	"testing"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
)

func TestPreferencesRepository_Defaults(t *testing.T) {
	repo := NewPreferencesRepository(kv.NewMemoryStore())

	prefs, err := repo.GetPreferences(context.Background())
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}

	want := domain.DefaultPreferences()
	if prefs != want {
		t.Errorf("GetPreferences() = %+v, want %+v", prefs, want)
	}
}

func TestPreferencesRepository_RoundTrip(t *testing.T) {
	repo := NewPreferencesRepository(kv.NewMemoryStore())
	ctx := context.Background()

	if err := repo.SetTheme(ctx, domain.ThemeDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if err := repo.SetLanguage(ctx, domain.LanguageNepali); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	if err := repo.SetOnboardingCompleted(ctx, true); err != nil {
		t.Fatalf("SetOnboardingCompleted() error = %v", err)
	}

	prefs, err := repo.GetPreferences(ctx)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if prefs.Theme != domain.ThemeDark {
		t.Errorf("Theme = %v, want dark", prefs.Theme)
	}
	if prefs.Language != domain.LanguageNepali {
		t.Errorf("Language = %v, want ne", prefs.Language)
	}
	if !prefs.OnboardingCompleted {
		t.Error("OnboardingCompleted = false, want true")
	}
}

func TestPreferencesRepository_InvalidStoredValues(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	store.Set(ctx, "theme", "solarized")
	store.Set(ctx, "siteLang", "fr")
	store.Set(ctx, "onboardCompleted", "definitely")

	repo := NewPreferencesRepository(store)
	prefs, err := repo.GetPreferences(ctx)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}

	want := domain.DefaultPreferences()
	if prefs != want {
		t.Errorf("GetPreferences() = %+v, want defaults %+v", prefs, want)
	}
}
