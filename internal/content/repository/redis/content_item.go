package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
)

const contentKeyPrefix = "content:item:"

func contentKey(id string) string {
	return contentKeyPrefix + id
}

// GetContentItem returns a cached item. Returns ErrCacheMiss when absent.
func (r *implRepository) GetContentItem(ctx context.Context, id string) (model.ContentItem, error) {
	raw, err := r.redis.Get(ctx, contentKey(id))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.ContentItem{}, repository.ErrCacheMiss
		}
		return model.ContentItem{}, fmt.Errorf("GetContentItem: %w", err)
	}

	var item model.ContentItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		// Stale or corrupt entry, treat as a miss so the caller refills it.
		return model.ContentItem{}, repository.ErrCacheMiss
	}

	return item, nil
}

// SetContentItem stores an item with the given TTL.
func (r *implRepository) SetContentItem(ctx context.Context, item model.ContentItem, ttl time.Duration) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("SetContentItem: %w", err)
	}

	if err := r.redis.Set(ctx, contentKey(item.ID), raw, ttl); err != nil {
		return fmt.Errorf("SetContentItem: %w", err)
	}

	return nil
}

// DeleteContentItem drops an item from the cache.
func (r *implRepository) DeleteContentItem(ctx context.Context, id string) error {
	if err := r.redis.Delete(ctx, contentKey(id)); err != nil {
		return fmt.Errorf("DeleteContentItem: %w", err)
	}
	return nil
}
