package persistence

import (
	"context"
	"testing"

	"github.com/hariyo-app/hariyo/shared/kv"
)

func TestLikedSetRepository(t *testing.T) {
	repo := NewLikedSetRepository(kv.NewMemoryStore())
	ctx := context.Background()

	liked, err := repo.LikedIDs(ctx)
	if err != nil {
		t.Fatalf("LikedIDs() error = %v", err)
	}
	if len(liked) != 0 {
		t.Errorf("LikedIDs() = %v, want empty", liked)
	}

	if err := repo.SetLiked(ctx, 7, true); err != nil {
		t.Fatalf("SetLiked() error = %v", err)
	}
	if err := repo.SetLiked(ctx, 9, true); err != nil {
		t.Fatalf("SetLiked() error = %v", err)
	}

	liked, err = repo.LikedIDs(ctx)
	if err != nil {
		t.Fatalf("LikedIDs() error = %v", err)
	}
	if !liked[7] || !liked[9] || len(liked) != 2 {
		t.Errorf("LikedIDs() = %v, want {7, 9}", liked)
	}

	// Setting an already-liked id again must not duplicate it
	if err := repo.SetLiked(ctx, 7, true); err != nil {
		t.Fatalf("SetLiked() error = %v", err)
	}
	liked, _ = repo.LikedIDs(ctx)
	if len(liked) != 2 {
		t.Errorf("LikedIDs() = %v, want 2 entries", liked)
	}

	if err := repo.SetLiked(ctx, 7, false); err != nil {
		t.Fatalf("SetLiked() error = %v", err)
	}
	liked, _ = repo.LikedIDs(ctx)
	if liked[7] || !liked[9] {
		t.Errorf("LikedIDs() = %v, want {9}", liked)
	}
}

func TestLikedSetRepository_MalformedJSON(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "likedPosts", "not-json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	repo := NewLikedSetRepository(store)
	liked, err := repo.LikedIDs(ctx)
	if err != nil {
		t.Fatalf("LikedIDs() error = %v", err)
	}
	if len(liked) != 0 {
		t.Errorf("LikedIDs() = %v, want empty for malformed data", liked)
	}
}
