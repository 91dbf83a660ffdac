package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ugc-srv/internal/inbox/repository"
	"ugc-srv/internal/model"
)

const inboxColumns = `id, content_id, status, notes, reviewed_by, reviewed_at, created_at, updated_at`

// foreignKeyViolation is the Postgres error code for FK failures.
const foreignKeyViolation = "23503"

// CreateInboxItem inserts a new item with status new. Returns
// repository.ErrContentMissing when the content id does not exist.
func (r *implRepository) CreateInboxItem(ctx context.Context, opt repository.CreateInboxItemOptions) (model.InboxItem, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO ugc.inbox_items (id, content_id, status, notes, reviewed_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + inboxColumns

	item, err := scanInboxItem(r.db.QueryRowContext(ctx, query,
		id, opt.ContentID, model.InboxStatusNew, opt.Notes, "", now, now,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return model.InboxItem{}, repository.ErrContentMissing
		}
		return model.InboxItem{}, fmt.Errorf("CreateInboxItem: %w", err)
	}

	return item, nil
}

// GetInboxItemByID returns one item with its source content attached.
func (r *implRepository) GetInboxItemByID(ctx context.Context, id string) (model.InboxItem, error) {
	query := `
		SELECT i.id, i.content_id, i.status, i.notes, i.reviewed_by, i.reviewed_at, i.created_at, i.updated_at,
			c.platform, c.platform_content_id, c.author_handle, c.caption, c.media_type, c.media_url,
			c.thumbnail_url, c.permalink, c.rights_status, c.quality_score
		FROM ugc.inbox_items i
		JOIN ugc.content_items c ON c.id = i.content_id
		WHERE i.id = $1
	`

	var item model.InboxItem
	var reviewedAt sql.NullTime
	var c model.ContentItem

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.ContentID, &item.Status, &item.Notes, &item.ReviewedBy, &reviewedAt,
		&item.CreatedAt, &item.UpdatedAt,
		&c.Platform, &c.PlatformContentID, &c.AuthorHandle, &c.Caption, &c.MediaType, &c.MediaURL,
		&c.ThumbnailURL, &c.Permalink, &c.RightsStatus, &c.QualityScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.InboxItem{}, repository.ErrNotFound
		}
		return model.InboxItem{}, fmt.Errorf("GetInboxItemByID: %w", err)
	}

	if reviewedAt.Valid {
		item.ReviewedAt = &reviewedAt.Time
	}
	c.ID = item.ContentID
	item.Content = &c

	return item, nil
}

// ListInboxItems returns a filtered page, newest first.
func (r *implRepository) ListInboxItems(ctx context.Context, opt repository.ListInboxItemsOptions) ([]model.InboxItem, error) {
	query, args := buildListInboxQuery(`SELECT `+inboxColumns+` FROM ugc.inbox_items`, opt, true)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListInboxItems: %w", err)
	}
	defer rows.Close()

	var items []model.InboxItem
	for rows.Next() {
		item, err := scanInboxItem(rows)
		if err != nil {
			return nil, fmt.Errorf("ListInboxItems scan: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CountInboxItems counts items matching the same filters as ListInboxItems.
func (r *implRepository) CountInboxItems(ctx context.Context, opt repository.ListInboxItemsOptions) (int64, error) {
	query, args := buildListInboxQuery(`SELECT COUNT(*) FROM ugc.inbox_items`, opt, false)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountInboxItems: %w", err)
	}

	return total, nil
}

// UpdateInboxStatus performs a guarded transition. The row is matched on both
// id and the expected current status; a concurrent transition makes the
// UPDATE hit zero rows, reported as repository.ErrStatusMoved.
func (r *implRepository) UpdateInboxStatus(ctx context.Context, opt repository.UpdateInboxStatusOptions) (model.InboxItem, error) {
	now := time.Now()

	query := `
		UPDATE ugc.inbox_items
		SET status = $1,
			notes = COALESCE($2, notes),
			reviewed_by = $3,
			reviewed_at = $4,
			updated_at = $5
		WHERE id = $6 AND status = $7
		RETURNING ` + inboxColumns

	item, err := scanInboxItem(r.db.QueryRowContext(ctx, query,
		opt.ToStatus, opt.Notes, opt.ReviewedBy, now, now, opt.ID, opt.FromStatus,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.InboxItem{}, repository.ErrStatusMoved
		}
		return model.InboxItem{}, fmt.Errorf("UpdateInboxStatus: %w", err)
	}

	return item, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInboxItem(row rowScanner) (model.InboxItem, error) {
	var item model.InboxItem
	var reviewedAt sql.NullTime

	if err := row.Scan(
		&item.ID, &item.ContentID, &item.Status, &item.Notes, &item.ReviewedBy, &reviewedAt,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return model.InboxItem{}, err
	}

	if reviewedAt.Valid {
		item.ReviewedAt = &reviewedAt.Time
	}

	return item, nil
}

func buildListInboxQuery(base string, opt repository.ListInboxItemsOptions, paged bool) (string, []interface{}) {
	query := base + " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if opt.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, opt.Status)
		argIdx++
	}
	if opt.ContentID != "" {
		query += fmt.Sprintf(" AND content_id = $%d", argIdx)
		args = append(args, opt.ContentID)
		argIdx++
	}

	if !paged {
		return query, args
	}

	query += " ORDER BY created_at DESC"

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
		argIdx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, opt.Offset)
	}

	return query, args
}
