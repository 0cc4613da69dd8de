package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
)

func TestPostRepository_EmptyStore(t *testing.T) {
	repo := NewPostRepository(kv.NewMemoryStore())

	posts, err := repo.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("ListPosts() = %d posts, want 0", len(posts))
	}
}

func TestPostRepository_MalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{{"},
		{name: "wrong shape", raw: `{"id": 1}`},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemoryStore()
			ctx := context.Background()
			if err := store.Set(ctx, "posts", tt.raw); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			repo := NewPostRepository(store)
			posts, err := repo.ListPosts(ctx)
			if err != nil {
				t.Fatalf("ListPosts() error = %v", err)
			}
			if len(posts) != 0 {
				t.Errorf("ListPosts() = %d posts, want 0 for malformed data", len(posts))
			}
		})
	}
}

func TestPostRepository_AppendAndGet(t *testing.T) {
	repo := NewPostRepository(kv.NewMemoryStore())
	ctx := context.Background()

	post := domain.Post{
		ID:          1700000000000,
		Title:       "Planted a tree",
		Description: "One sapling at a time",
		Likes:       0,
		CreatedAt:   1700000000000,
		Author:      "Asha",
	}

	if err := repo.AppendPost(ctx, post); err != nil {
		t.Fatalf("AppendPost() error = %v", err)
	}

	got, err := repo.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if got != post {
		t.Errorf("GetPost() = %+v, want %+v", got, post)
	}

	if _, err := repo.GetPost(ctx, 42); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("GetPost(42) error = %v, want ErrPostNotFound", err)
	}
}

func TestPostRepository_Update(t *testing.T) {
	repo := NewPostRepository(kv.NewMemoryStore())
	ctx := context.Background()

	post := domain.Post{ID: 10, Title: "Compost bin", CreatedAt: 10, Author: "Asha"}
	if err := repo.AppendPost(ctx, post); err != nil {
		t.Fatalf("AppendPost() error = %v", err)
	}

	post.Likes = 3
	if err := repo.UpdatePost(ctx, post); err != nil {
		t.Fatalf("UpdatePost() error = %v", err)
	}

	got, err := repo.GetPost(ctx, 10)
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if got.Likes != 3 {
		t.Errorf("Likes = %d, want 3", got.Likes)
	}

	missing := domain.Post{ID: 99, Title: "Ghost"}
	if err := repo.UpdatePost(ctx, missing); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("UpdatePost(missing) error = %v, want ErrPostNotFound", err)
	}
}

func TestPostRepository_PreservesStoredOrder(t *testing.T) {
	repo := NewPostRepository(kv.NewMemoryStore())
	ctx := context.Background()

	ids := []int64{3, 1, 2}
	for _, id := range ids {
		if err := repo.AppendPost(ctx, domain.Post{ID: id, Title: "t", CreatedAt: id}); err != nil {
			t.Fatalf("AppendPost() error = %v", err)
		}
	}

	posts, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	for i, id := range ids {
		if posts[i].ID != id {
			t.Errorf("posts[%d].ID = %d, want %d", i, posts[i].ID, id)
		}
	}
}
