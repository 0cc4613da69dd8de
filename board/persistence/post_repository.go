package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*KVPostRepository)(nil)

// KVPostRepository implements domain.PostRepository over the kv store,
// holding the whole collection as one JSON array under the posts key.
type KVPostRepository struct {
	store kv.Store
}

// NewPostRepository creates a new KVPostRepository.
func NewPostRepository(store kv.Store) *KVPostRepository {
	return &KVPostRepository{store: store}
}

// postRecord is the persisted wire shape of a post. It matches the JSON
// already written by existing clients.
type postRecord struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Likes       int    `json:"likes"`
	CreatedAt   int64  `json:"createdAt"`
	Author      string `json:"author"`
}

func (r postRecord) toDomain() domain.Post {
	return domain.Post{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Likes:       r.Likes,
		CreatedAt:   r.CreatedAt,
		Author:      r.Author,
	}
}

func toRecord(p domain.Post) postRecord {
	return postRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Likes:       p.Likes,
		CreatedAt:   p.CreatedAt,
		Author:      p.Author,
	}
}

// load reads and decodes the stored collection. A missing key or
// malformed JSON yields the empty collection.
func (r *KVPostRepository) load(ctx context.Context) ([]postRecord, error) {
	raw, found, err := r.store.Get(ctx, keyPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	if !found {
		return []postRecord{}, nil
	}

	var records []postRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn().Err(err).Msg("Stored posts are malformed, treating as empty")
		return []postRecord{}, nil
	}

	return records, nil
}

func (r *KVPostRepository) save(ctx context.Context, records []postRecord) error {
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}

	if err := r.store.Set(ctx, keyPosts, string(encoded)); err != nil {
		return fmt.Errorf("failed to write posts: %w", err)
	}

	return nil
}

// ListPosts returns all posts in stored order.
func (r *KVPostRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, rec.toDomain())
	}

	return posts, nil
}

// GetPost returns the post with the given id.
func (r *KVPostRepository) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	records, err := r.load(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}

	return domain.Post{}, fmt.Errorf("post %d: %w", id, domain.ErrPostNotFound)
}

// AppendPost adds a post to the end of the collection.
func (r *KVPostRepository) AppendPost(ctx context.Context, p domain.Post) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	return r.save(ctx, append(records, toRecord(p)))
}

// UpdatePost replaces the stored post with the same ID.
func (r *KVPostRepository) UpdatePost(ctx context.Context, p domain.Post) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID == p.ID {
			records[i] = toRecord(p)
			return r.save(ctx, records)
		}
	}

	return fmt.Errorf("post %d: %w", p.ID, domain.ErrPostNotFound)
}
