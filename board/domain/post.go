package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DefaultAuthor is used when a post is created without an authenticated name.
const DefaultAuthor = "Eco Member"

var (
	// ErrEmptyTitle indicates a post title was empty after trimming.
	ErrEmptyTitle = errors.New("post title cannot be empty")
	// ErrPostNotFound indicates the referenced post id does not exist.
	ErrPostNotFound = errors.New("post not found")
)

// Post is a community board entry.
// ID doubles as the creation timestamp in unix milliseconds; display order
// is CreatedAt descending. Posts are never deleted by any exposed operation.
type Post struct {
	ID          int64
	Title       string
	Description string
	Image       string
	Likes       int
	CreatedAt   int64
	Author      string
}

// NewPost validates and constructs a post with zero likes.
// The title must be non-empty after trimming; the author falls back to
// DefaultAuthor.
func NewPost(title, description, image, author string, now time.Time) (Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Post{}, ErrEmptyTitle
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultAuthor
	}

	ts := now.UnixMilli()
	return Post{
		ID:          ts,
		Title:       title,
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
		Likes:       0,
		CreatedAt:   ts,
		Author:      author,
	}, nil
}

// PostRepository persists the post collection.
type PostRepository interface {
	// ListPosts returns all posts in stored order.
	ListPosts(ctx context.Context) ([]Post, error)

	// GetPost returns the post with the given id, or ErrPostNotFound.
	GetPost(ctx context.Context, id int64) (Post, error)

	// AppendPost adds a post to the collection.
	AppendPost(ctx context.Context, p Post) error

	// UpdatePost replaces the stored post with the same ID.
	// Returns ErrPostNotFound if no such post exists.
	UpdatePost(ctx context.Context, p Post) error
}

// LikedSetRepository persists the set of post ids this client has liked.
// The set is keyed per browser, not per authenticated identity.
type LikedSetRepository interface {
	LikedIDs(ctx context.Context) (map[int64]bool, error)
	SetLiked(ctx context.Context, id int64, liked bool) error
}
