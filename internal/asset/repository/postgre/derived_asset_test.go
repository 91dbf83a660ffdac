package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"ugc-srv/internal/asset/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/log"
)

func newMock(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.Init(log.ZapConfig{Level: "error"})), mock
}

var assetRowColumns = []string{
	"id", "content_id", "kind", "status", "options",
	"output_url", "audio_url", "duration_seconds", "hotspots", "error_message",
	"requested_by", "created_at", "updated_at", "completed_at",
}

func processingRow(kind string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(assetRowColumns).
		AddRow("job-1", "content-1", kind, model.AssetStatusProcessing, []byte(`{}`),
			nil, nil, nil, nil, nil, "operator-1", now, now, nil)
}

func TestCreateDerivedAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts in status processing", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`INSERT INTO ugc\.derived_assets`).
			WithArgs(sqlmock.AnyArg(), "content-1", model.AssetKindEdit, model.AssetStatusProcessing,
				sqlmock.AnyArg(), "operator-1", sqlmock.AnyArg()).
			WillReturnRows(processingRow(model.AssetKindEdit))

		job, err := repo.CreateDerivedAsset(ctx, repository.CreateDerivedAssetOptions{
			ContentID:   "content-1",
			Kind:        model.AssetKindEdit,
			RequestedBy: "operator-1",
		})
		require.NoError(t, err)
		require.Equal(t, model.AssetStatusProcessing, job.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation maps to content missing", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`INSERT INTO ugc\.derived_assets`).
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.CreateDerivedAsset(ctx, repository.CreateDerivedAssetOptions{ContentID: "ghost", Kind: model.AssetKindEdit})
		require.ErrorIs(t, err, repository.ErrContentMissing)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkDerivedAssetCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("flips a processing job and stores the result", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		completed := sqlmock.NewRows(assetRowColumns).
			AddRow("job-1", "content-1", model.AssetKindVoiceover, model.AssetStatusCompleted, []byte(`{}`),
				nil, "voiceovers/job-1.mp3", 12.5, nil, nil, "operator-1", now, now, now)

		mock.ExpectQuery(`UPDATE ugc\.derived_assets`).
			WithArgs("job-1", model.AssetStatusCompleted, "", "voiceovers/job-1.mp3", 12.5,
				nil, sqlmock.AnyArg(), model.AssetStatusProcessing).
			WillReturnRows(completed)

		job, err := repo.MarkDerivedAssetCompleted(ctx, repository.MarkCompletedOptions{
			ID:              "job-1",
			AudioURL:        "voiceovers/job-1.mp3",
			DurationSeconds: 12.5,
		})
		require.NoError(t, err)
		require.Equal(t, model.AssetStatusCompleted, job.Status)
		require.Equal(t, "voiceovers/job-1.mp3", job.AudioURL)
		require.NotNil(t, job.CompletedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already resolved job matches zero rows", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`UPDATE ugc\.derived_assets`).
			WillReturnRows(sqlmock.NewRows(assetRowColumns))

		_, err := repo.MarkDerivedAssetCompleted(ctx, repository.MarkCompletedOptions{ID: "job-1"})
		require.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hotspots roundtrip through the json column", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		stored := sqlmock.NewRows(assetRowColumns).
			AddRow("job-1", "content-1", model.AssetKindHotspot, model.AssetStatusCompleted, []byte(`{}`),
				nil, nil, nil, []byte(`[{"label":"sneaker","x":0.1,"y":0.2,"w":0.3,"h":0.3,"product_id":42,"price":"89.00"}]`),
				nil, "operator-1", now, now, now)

		mock.ExpectQuery(`UPDATE ugc\.derived_assets`).
			WillReturnRows(stored)

		job, err := repo.MarkDerivedAssetCompleted(ctx, repository.MarkCompletedOptions{
			ID:       "job-1",
			Hotspots: []model.Hotspot{{Label: "sneaker", X: 0.1, Y: 0.2, W: 0.3, H: 0.3, ProductID: 42, Price: "89.00"}},
		})
		require.NoError(t, err)
		require.Len(t, job.Hotspots, 1)
		require.Equal(t, int64(42), job.Hotspots[0].ProductID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkDerivedAssetFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("records the failure reason", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		failed := sqlmock.NewRows(assetRowColumns).
			AddRow("job-1", "content-1", model.AssetKindEdit, model.AssetStatusFailed, []byte(`{}`),
				nil, nil, nil, nil, "model overloaded", "operator-1", now, now, now)

		mock.ExpectQuery(`UPDATE ugc\.derived_assets`).
			WithArgs("job-1", model.AssetStatusFailed, "model overloaded", sqlmock.AnyArg(), model.AssetStatusProcessing).
			WillReturnRows(failed)

		job, err := repo.MarkDerivedAssetFailed(ctx, "job-1", "model overloaded")
		require.NoError(t, err)
		require.Equal(t, model.AssetStatusFailed, job.Status)
		require.Equal(t, "model overloaded", job.ErrorMessage)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
