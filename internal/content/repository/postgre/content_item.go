package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
)

const contentColumns = `id, platform, platform_content_id,
		author_id, author_handle, author_follower_count, author_verified,
		caption, hashtags, location, media_type, media_url, thumbnail_url, permalink, duration_seconds,
		likes, comments, shares, views,
		category, sentiment, sentiment_score, quality_score, brand_safe, tags, classified,
		rights_status, posted_at, discovered_at, updated_at`

// CreateContentItem inserts a new item with rights status unknown. The second
// return is false when an item with the same (platform, platform_content_id)
// already exists.
func (r *implRepository) CreateContentItem(ctx context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO ugc.content_items (id, platform, platform_content_id,
			author_id, author_handle, author_follower_count, author_verified,
			caption, hashtags, location, media_type, media_url, thumbnail_url, permalink, duration_seconds,
			likes, comments, shares, views,
			category, sentiment, sentiment_score, quality_score, brand_safe, tags, classified,
			rights_status, posted_at, discovered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		ON CONFLICT (platform, platform_content_id) DO NOTHING
		RETURNING ` + contentColumns

	row := r.db.QueryRowContext(ctx, query,
		id, opt.Platform, opt.PlatformContentID,
		opt.AuthorID, opt.AuthorHandle, opt.AuthorFollowerCount, opt.AuthorVerified,
		opt.Caption, pq.Array(opt.Hashtags), opt.Location, opt.MediaType, opt.MediaURL, opt.ThumbnailURL, opt.Permalink, opt.DurationSeconds,
		opt.Likes, opt.Comments, opt.Shares, opt.Views,
		opt.Category, opt.Sentiment, opt.SentimentScore, opt.QualityScore, opt.BrandSafe, pq.Array(opt.Tags), opt.Classified,
		model.RightsStatusUnknown, opt.PostedAt, now, now,
	)

	item, err := scanContentItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContentItem{}, false, nil
		}
		return model.ContentItem{}, false, fmt.Errorf("CreateContentItem: %w", err)
	}

	return item, true, nil
}

// GetContentItemByID returns a single item by id.
func (r *implRepository) GetContentItemByID(ctx context.Context, id string) (model.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM ugc.content_items WHERE id = $1`

	item, err := scanContentItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContentItem{}, repository.ErrNotFound
		}
		return model.ContentItem{}, fmt.Errorf("GetContentItemByID: %w", err)
	}

	return item, nil
}

// ListContentItems returns a filtered page of items, newest first.
func (r *implRepository) ListContentItems(ctx context.Context, opt repository.ListContentItemsOptions) ([]model.ContentItem, error) {
	query, args := buildListContentQuery(`SELECT `+contentColumns+` FROM ugc.content_items`, opt, true)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListContentItems: %w", err)
	}
	defer rows.Close()

	var items []model.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("ListContentItems scan: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CountContentItems counts items matching the same filters as ListContentItems.
func (r *implRepository) CountContentItems(ctx context.Context, opt repository.ListContentItemsOptions) (int64, error) {
	query, args := buildListContentQuery(`SELECT COUNT(*) FROM ugc.content_items`, opt, false)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountContentItems: %w", err)
	}

	return total, nil
}

// UpdateContentEngagement overwrites the engagement counters.
func (r *implRepository) UpdateContentEngagement(ctx context.Context, opt repository.UpdateEngagementOptions) (model.ContentItem, error) {
	query := `
		UPDATE ugc.content_items
		SET likes = $1, comments = $2, shares = $3, views = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + contentColumns

	item, err := scanContentItem(r.db.QueryRowContext(ctx, query,
		opt.Likes, opt.Comments, opt.Shares, opt.Views, time.Now(), opt.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContentItem{}, repository.ErrNotFound
		}
		return model.ContentItem{}, fmt.Errorf("UpdateContentEngagement: %w", err)
	}

	return item, nil
}
