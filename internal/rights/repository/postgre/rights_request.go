package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ugc-srv/internal/model"
	"ugc-srv/internal/rights/repository"
)

const rightsColumns = `id, content_id, brand_id, terms, status, requested_by, resolved_by, resolved_at, created_at, updated_at`

// RequestRights opens a pending request and mirrors rights_status requested
// onto the content row, both inside one transaction. The content row is
// locked first so concurrent requests serialize on it.
func (r *implRepository) RequestRights(ctx context.Context, opt repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("RequestRights: begin: %w", err)
	}
	defer tx.Rollback()

	ref, rightsStatus, err := lockContentRow(ctx, tx, opt.ContentID)
	if err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, err
	}

	switch rightsStatus {
	case model.RightsStatusApproved:
		return model.RightsRequest{}, repository.ContentRef{}, repository.ErrAlreadyApproved
	case model.RightsStatusRequested:
		return model.RightsRequest{}, repository.ContentRef{}, repository.ErrRequestPending
	}

	id := uuid.New().String()
	now := time.Now()

	insert := `
		INSERT INTO ugc.rights_requests (id, content_id, brand_id, terms, status, requested_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + rightsColumns

	req, err := scanRightsRequest(tx.QueryRowContext(ctx, insert,
		id, opt.ContentID, opt.BrandID, opt.Terms, model.RightsStatusPending, opt.RequestedBy, now, now,
	))
	if err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("RequestRights: insert: %w", err)
	}

	if err := setContentRightsStatus(ctx, tx, opt.ContentID, model.RightsStatusRequested); err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("RequestRights: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("RequestRights: commit: %w", err)
	}

	return req, ref, nil
}

// ResolveRights moves the latest pending request to its decision and mirrors
// the decision onto the content row, both inside one transaction.
func (r *implRepository) ResolveRights(ctx context.Context, opt repository.ResolveRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("ResolveRights: begin: %w", err)
	}
	defer tx.Rollback()

	ref, _, err := lockContentRow(ctx, tx, opt.ContentID)
	if err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, err
	}

	now := time.Now()

	update := `
		UPDATE ugc.rights_requests
		SET status = $1, resolved_by = $2, resolved_at = $3, updated_at = $3
		WHERE id = (
			SELECT id FROM ugc.rights_requests
			WHERE content_id = $4 AND status = $5
			ORDER BY created_at DESC
			LIMIT 1
		)
		RETURNING ` + rightsColumns

	req, err := scanRightsRequest(tx.QueryRowContext(ctx, update,
		opt.Decision, opt.ResolvedBy, now, opt.ContentID, model.RightsStatusPending,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RightsRequest{}, repository.ContentRef{}, repository.ErrNoPending
		}
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("ResolveRights: update: %w", err)
	}

	if err := setContentRightsStatus(ctx, tx, opt.ContentID, opt.Decision); err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("ResolveRights: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.RightsRequest{}, repository.ContentRef{}, fmt.Errorf("ResolveRights: commit: %w", err)
	}

	return req, ref, nil
}

// ListRightsRequests returns every request for a content item, newest first.
func (r *implRepository) ListRightsRequests(ctx context.Context, contentID string) ([]model.RightsRequest, error) {
	query := `SELECT ` + rightsColumns + ` FROM ugc.rights_requests WHERE content_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("ListRightsRequests: %w", err)
	}
	defer rows.Close()

	var requests []model.RightsRequest
	for rows.Next() {
		req, err := scanRightsRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("ListRightsRequests scan: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func lockContentRow(ctx context.Context, tx *sql.Tx, contentID string) (repository.ContentRef, string, error) {
	query := `
		SELECT author_handle, platform, permalink, rights_status
		FROM ugc.content_items
		WHERE id = $1
		FOR UPDATE
	`

	var ref repository.ContentRef
	var rightsStatus string

	err := tx.QueryRowContext(ctx, query, contentID).Scan(
		&ref.AuthorHandle, &ref.Platform, &ref.Permalink, &rightsStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ContentRef{}, "", repository.ErrContentMissing
		}
		return repository.ContentRef{}, "", fmt.Errorf("lockContentRow: %w", err)
	}

	return ref, rightsStatus, nil
}

func setContentRightsStatus(ctx context.Context, tx *sql.Tx, contentID, status string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE ugc.content_items SET rights_status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), contentID,
	)
	if err != nil {
		return fmt.Errorf("setContentRightsStatus: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRightsRequest(row rowScanner) (model.RightsRequest, error) {
	var req model.RightsRequest
	var resolvedBy sql.NullString
	var resolvedAt sql.NullTime

	if err := row.Scan(
		&req.ID, &req.ContentID, &req.BrandID, &req.Terms, &req.Status,
		&req.RequestedBy, &resolvedBy, &resolvedAt, &req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return model.RightsRequest{}, err
	}

	if resolvedBy.Valid {
		req.ResolvedBy = resolvedBy.String
	}
	if resolvedAt.Valid {
		req.ResolvedAt = &resolvedAt.Time
	}

	return req, nil
}
