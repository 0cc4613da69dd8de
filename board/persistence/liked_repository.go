package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/shared/kv"
	"github.com/rs/zerolog/log"
)

var _ domain.LikedSetRepository = (*KVLikedSetRepository)(nil)

// KVLikedSetRepository stores the liked-post id set as a JSON array under
// the likedPosts key.
type KVLikedSetRepository struct {
	store kv.Store
}

// NewLikedSetRepository creates a new KVLikedSetRepository.
func NewLikedSetRepository(store kv.Store) *KVLikedSetRepository {
	return &KVLikedSetRepository{store: store}
}

func (r *KVLikedSetRepository) load(ctx context.Context) ([]int64, error) {
	raw, found, err := r.store.Get(ctx, keyLikedPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to read liked ids: %w", err)
	}
	if !found {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Warn().Err(err).Msg("Stored liked ids are malformed, treating as empty")
		return nil, nil
	}

	return ids, nil
}

// LikedIDs returns the set of liked post ids.
func (r *KVLikedSetRepository) LikedIDs(ctx context.Context) (map[int64]bool, error) {
	ids, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	liked := make(map[int64]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}

	return liked, nil
}

// SetLiked adds or removes id from the set.
func (r *KVLikedSetRepository) SetLiked(ctx context.Context, id int64, liked bool) error {
	ids, err := r.load(ctx)
	if err != nil {
		return err
	}

	next := make([]int64, 0, len(ids)+1)
	for _, existing := range ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	if liked {
		next = append(next, id)
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode liked ids: %w", err)
	}

	if err := r.store.Set(ctx, keyLikedPosts, string(encoded)); err != nil {
		return fmt.Errorf("failed to write liked ids: %w", err)
	}

	return nil
}
