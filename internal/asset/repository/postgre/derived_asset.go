package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ugc-srv/internal/asset/repository"
	"ugc-srv/internal/model"
)

const assetColumns = `id, content_id, kind, status, options,
		output_url, audio_url, duration_seconds, hotspots, error_message,
		requested_by, created_at, updated_at, completed_at`

// foreignKeyViolation is the Postgres error code for FK failures.
const foreignKeyViolation = "23503"

// CreateDerivedAsset inserts a new job row in status processing. Returns
// repository.ErrContentMissing when the content id does not exist.
func (r *implRepository) CreateDerivedAsset(ctx context.Context, opts repository.CreateDerivedAssetOptions) (model.DerivedAsset, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO ugc.derived_assets (id, content_id, kind, status, options, requested_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + assetColumns

	job, err := scanDerivedAsset(r.db.QueryRowContext(ctx, query,
		id, opts.ContentID, opts.Kind, model.AssetStatusProcessing, opts.Options, opts.RequestedBy, now,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return model.DerivedAsset{}, repository.ErrContentMissing
		}
		return model.DerivedAsset{}, fmt.Errorf("CreateDerivedAsset: %w", err)
	}

	return job, nil
}

// GetDerivedAssetByID returns one job row.
func (r *implRepository) GetDerivedAssetByID(ctx context.Context, id string) (model.DerivedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM ugc.derived_assets WHERE id = $1`

	job, err := scanDerivedAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DerivedAsset{}, repository.ErrNotFound
		}
		return model.DerivedAsset{}, fmt.Errorf("GetDerivedAssetByID: %w", err)
	}

	return job, nil
}

// ListDerivedAssetsByContent returns every job for a content item, newest first.
func (r *implRepository) ListDerivedAssetsByContent(ctx context.Context, contentID string) ([]model.DerivedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM ugc.derived_assets WHERE content_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("ListDerivedAssetsByContent: %w", err)
	}
	defer rows.Close()

	jobs := []model.DerivedAsset{}
	for rows.Next() {
		job, err := scanDerivedAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("ListDerivedAssetsByContent: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListDerivedAssetsByContent: %w", err)
	}

	return jobs, nil
}

// MarkDerivedAssetCompleted stores the result fields and flips the job to
// completed. Only processing jobs are updated.
func (r *implRepository) MarkDerivedAssetCompleted(ctx context.Context, opts repository.MarkCompletedOptions) (model.DerivedAsset, error) {
	now := time.Now()

	var hotspots []byte
	if len(opts.Hotspots) > 0 {
		var err error
		hotspots, err = json.Marshal(opts.Hotspots)
		if err != nil {
			return model.DerivedAsset{}, fmt.Errorf("MarkDerivedAssetCompleted: %w", err)
		}
	}

	query := `
		UPDATE ugc.derived_assets
		SET status = $2, output_url = $3, audio_url = $4, duration_seconds = $5,
			hotspots = $6, updated_at = $7, completed_at = $7
		WHERE id = $1 AND status = $8
		RETURNING ` + assetColumns

	job, err := scanDerivedAsset(r.db.QueryRowContext(ctx, query,
		opts.ID, model.AssetStatusCompleted, opts.OutputURL, opts.AudioURL, opts.DurationSeconds,
		hotspots, now, model.AssetStatusProcessing,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DerivedAsset{}, repository.ErrNotFound
		}
		return model.DerivedAsset{}, fmt.Errorf("MarkDerivedAssetCompleted: %w", err)
	}

	return job, nil
}

// MarkDerivedAssetFailed records the failure reason. Partial results are
// discarded. Only processing jobs are updated.
func (r *implRepository) MarkDerivedAssetFailed(ctx context.Context, id, errorMessage string) (model.DerivedAsset, error) {
	now := time.Now()

	query := `
		UPDATE ugc.derived_assets
		SET status = $2, error_message = $3, updated_at = $4, completed_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + assetColumns

	job, err := scanDerivedAsset(r.db.QueryRowContext(ctx, query,
		id, model.AssetStatusFailed, errorMessage, now, model.AssetStatusProcessing,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DerivedAsset{}, repository.ErrNotFound
		}
		return model.DerivedAsset{}, fmt.Errorf("MarkDerivedAssetFailed: %w", err)
	}

	return job, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDerivedAsset(row rowScanner) (model.DerivedAsset, error) {
	var job model.DerivedAsset
	var options, hotspots []byte
	var outputURL, audioURL, errorMessage sql.NullString
	var duration sql.NullFloat64
	var completedAt sql.NullTime

	err := row.Scan(
		&job.ID,
		&job.ContentID,
		&job.Kind,
		&job.Status,
		&options,
		&outputURL,
		&audioURL,
		&duration,
		&hotspots,
		&errorMessage,
		&job.RequestedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return model.DerivedAsset{}, err
	}

	job.Options = options
	job.OutputURL = outputURL.String
	job.AudioURL = audioURL.String
	job.DurationSeconds = duration.Float64
	job.ErrorMessage = errorMessage.String
	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}
	if len(hotspots) > 0 {
		if err := json.Unmarshal(hotspots, &job.Hotspots); err != nil {
			return model.DerivedAsset{}, fmt.Errorf("scanDerivedAsset: hotspots: %w", err)
		}
	}

	return job, nil
}
