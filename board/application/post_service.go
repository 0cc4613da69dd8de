package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
	"github.com/rs/zerolog/log"
)

// PostService implements the community post board: create, list sorted by
// recency, and the per-client like toggle.
type PostService struct {
	posts    domain.PostRepository
	liked    domain.LikedSetRepository
	sessions domain.SessionRepository
	markdown DescriptionRenderer
	tx       kv.Transactor

	now func() time.Time
}

// NewPostService wires the post board over its repositories.
func NewPostService(posts domain.PostRepository, liked domain.LikedSetRepository, sessions domain.SessionRepository, markdown DescriptionRenderer, tx kv.Transactor) *PostService {
	return &PostService{
		posts:    posts,
		liked:    liked,
		sessions: sessions,
		markdown: markdown,
		tx:       tx,
		now:      time.Now,
	}
}

// PostView is a post prepared for display: rendered description plus the
// viewer's liked flag.
type PostView struct {
	Post            domain.Post
	DescriptionHTML string
	Snippet         string
	Liked           bool
}

// CreatePost validates and appends a new post. The author is the current
// session's user name, falling back to the default. first reports whether
// this was the first post ever created, for the one-time celebration.
func (s *PostService) CreatePost(ctx context.Context, title, description, image string) (post domain.Post, first bool, err error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return domain.Post{}, false, fmt.Errorf("failed to resolve author: %w", err)
	}

	post, err = domain.NewPost(title, description, image, session.UserName, s.now())
	if err != nil {
		return domain.Post{}, false, err
	}

	existing, err := s.posts.ListPosts(ctx)
	if err != nil {
		return domain.Post{}, false, err
	}

	// IDs are creation timestamps; keep them unique when two posts land
	// in the same millisecond.
	for hasID(existing, post.ID) {
		post.ID++
	}

	if err := s.posts.AppendPost(ctx, post); err != nil {
		return domain.Post{}, false, err
	}

	log.Info().Int64("post", post.ID).Str("author", post.Author).Msg("Post created")
	return post, len(existing) == 0, nil
}

func hasID(posts []domain.Post, id int64) bool {
	for _, p := range posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ToggleLike flips the viewer's liked state for a post and adjusts its
// like count, clamped at zero. A vanished post id is a no-op, not an
// error; the returned post is nil in that case.
func (s *PostService) ToggleLike(ctx context.Context, id int64) (*domain.Post, bool, error) {
	post, err := s.posts.GetPost(ctx, id)
	if errors.Is(err, domain.ErrPostNotFound) {
		log.Debug().Int64("post", id).Msg("Like toggle for vanished post ignored")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	likedSet, err := s.liked.LikedIDs(ctx)
	if err != nil {
		return nil, false, err
	}

	nowLiked := !likedSet[id]
	if nowLiked {
		post.Likes++
	} else if post.Likes > 0 {
		post.Likes--
	}

	// The count and the liked set must move together: a failure after
	// one write would leave a like half-applied and break the toggle's
	// self-inverse property on retry.
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.posts.UpdatePost(ctx, post); err != nil {
			return err
		}
		return s.liked.SetLiked(ctx, id, nowLiked)
	})
	if err != nil {
		return nil, false, err
	}

	return &post, nowLiked, nil
}

// ListPosts returns all posts ordered by creation time descending. The
// sort is stable, so posts sharing a timestamp keep their stored order.
func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})

	return posts, nil
}

// ListPostViews returns the sorted posts with rendered descriptions and
// the viewer's liked flags.
func (s *PostService) ListPostViews(ctx context.Context) ([]PostView, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	likedSet, err := s.liked.LikedIDs(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		view := PostView{Post: p, Liked: likedSet[p.ID]}

		rendered, err := s.markdown.Render(p.Description)
		if err != nil {
			// A single bad description should not take down the board
			log.Error().Err(err).Int64("post", p.ID).Msg("Failed to render description")
			view.Snippet = p.Description
		} else {
			view.DescriptionHTML = rendered.HTML
			view.Snippet = rendered.Snippet
		}

		views = append(views, view)
	}

	return views, nil
}
