package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewPost(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		name       string
		title      string
		author     string
		wantErr    error
		wantAuthor string
	}{
		{
			name:       "valid",
			title:      "Cleaned the river bank",
			author:     "Asha",
			wantAuthor: "Asha",
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			title:   "   \t",
			wantErr: ErrEmptyTitle,
		},
		{
			name:       "missing author falls back",
			title:      "Cycled to work",
			author:     "  ",
			wantAuthor: DefaultAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := NewPost(tt.title, "desc", "", tt.author, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPost() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if post.Likes != 0 {
				t.Errorf("Likes = %d, want 0", post.Likes)
			}
			if post.ID != now.UnixMilli() || post.CreatedAt != now.UnixMilli() {
				t.Errorf("ID/CreatedAt = %d/%d, want %d", post.ID, post.CreatedAt, now.UnixMilli())
			}
			if post.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", post.Author, tt.wantAuthor)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	if _, err := ParseTheme("solarized"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("ParseTheme(solarized) error = %v, want ErrInvalidTheme", err)
	}
	theme, err := ParseTheme(" Dark ")
	if err != nil || theme != ThemeDark {
		t.Errorf("ParseTheme(Dark) = (%v, %v), want (dark, nil)", theme, err)
	}
}

func TestParseLanguage(t *testing.T) {
	if _, err := ParseLanguage("fr"); !errors.Is(err, ErrInvalidLanguage) {
		t.Errorf("ParseLanguage(fr) error = %v, want ErrInvalidLanguage", err)
	}
	lang, err := ParseLanguage("NE")
	if err != nil || lang != LanguageNepali {
		t.Errorf("ParseLanguage(NE) = (%v, %v), want (ne, nil)", lang, err)
	}
}
