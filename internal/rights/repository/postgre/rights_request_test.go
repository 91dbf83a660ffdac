package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"ugc-srv/internal/model"
	"ugc-srv/internal/rights/repository"
	"ugc-srv/pkg/log"
)

func newMock(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.Init(log.ZapConfig{Level: "error"})), mock
}

func requestRows(status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "content_id", "brand_id", "terms", "status",
		"requested_by", "resolved_by", "resolved_at", "created_at", "updated_at",
	}).AddRow("req-1", "content-1", "brand-1", []byte(`{}`), status, "operator-1", nil, nil, now, now)
}

func contentRow(rightsStatus string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"author_handle", "platform", "permalink", "rights_status"}).
		AddRow("@creator", "instagram", "https://instagram.com/p/p1", rightsStatus)
}

func TestRequestRights(t *testing.T) {
	ctx := context.Background()
	opt := repository.RequestRightsOptions{
		ContentID:   "content-1",
		BrandID:     "brand-1",
		RequestedBy: "operator-1",
	}

	t.Run("inserts the request and mirrors the content row in one transaction", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT author_handle, platform, permalink, rights_status`).
			WithArgs("content-1").
			WillReturnRows(contentRow(model.RightsStatusUnknown))
		mock.ExpectQuery(`INSERT INTO ugc\.rights_requests`).
			WillReturnRows(requestRows(model.RightsStatusPending))
		mock.ExpectExec(`UPDATE ugc\.content_items SET rights_status`).
			WithArgs(model.RightsStatusRequested, sqlmock.AnyArg(), "content-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req, ref, err := repo.RequestRights(ctx, opt)
		require.NoError(t, err)
		require.Equal(t, model.RightsStatusPending, req.Status)
		require.Equal(t, "@creator", ref.AuthorHandle)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when rights are already approved", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT author_handle, platform, permalink, rights_status`).
			WithArgs("content-1").
			WillReturnRows(contentRow(model.RightsStatusApproved))
		mock.ExpectRollback()

		_, _, err := repo.RequestRights(ctx, opt)
		require.ErrorIs(t, err, repository.ErrAlreadyApproved)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a request is already pending", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT author_handle, platform, permalink, rights_status`).
			WithArgs("content-1").
			WillReturnRows(contentRow(model.RightsStatusRequested))
		mock.ExpectRollback()

		_, _, err := repo.RequestRights(ctx, opt)
		require.ErrorIs(t, err, repository.ErrRequestPending)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing content surfaces before any write", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT author_handle, platform, permalink, rights_status`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"author_handle", "platform", "permalink", "rights_status"}))
		mock.ExpectRollback()

		missing := opt
		missing.ContentID = "ghost"
		_, _, err := repo.RequestRights(ctx, missing)
		require.ErrorIs(t, err, repository.ErrContentMissing)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResolveRights(t *testing.T) {
	ctx := context.Background()
	opt := repository.ResolveRightsOptions{
		ContentID:  "content-1",
		Decision:   model.RightsStatusDeclined,
		ResolvedBy: "operator-1",
	}

	t.Run("moves the pending request and mirrors the decision", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT author_handle, platform, permalink, rights_status`).
			WithArgs("content-1").
			WillReturnRows(contentRow(model.RightsStatusRequested))
		mock.ExpectQuery(`UPDATE ugc\.rights_requests`).
			WillReturnRows(requestRows(model.RightsStatusDeclined))
		mock.ExpectExec(`UPDATE ugc\.content_items SET rights_status`).
			WithArgs(model.RightsStatusDeclined, sqlmock.AnyArg(), "content-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req, _, err := repo.ResolveRights(ctx, opt)
		require.NoError(t, err)
		require.Equal(t, model.RightsStatusDeclined, req.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing pending rolls back with no pending", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT author_handle, platform, permalink, rights_status`).
			WithArgs("content-1").
			WillReturnRows(contentRow(model.RightsStatusUnknown))
		mock.ExpectQuery(`UPDATE ugc\.rights_requests`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "content_id", "brand_id", "terms", "status",
				"requested_by", "resolved_by", "resolved_at", "created_at", "updated_at",
			}))
		mock.ExpectRollback()

		_, _, err := repo.ResolveRights(ctx, opt)
		require.ErrorIs(t, err, repository.ErrNoPending)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRightsRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the history newest first", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "content_id", "brand_id", "terms", "status",
			"requested_by", "resolved_by", "resolved_at", "created_at", "updated_at",
		}).
			AddRow("req-2", "content-1", "brand-1", []byte(`{}`), model.RightsStatusPending, "operator-1", nil, nil, now, now).
			AddRow("req-1", "content-1", "brand-1", []byte(`{}`), model.RightsStatusDeclined, "operator-1", "operator-2", now, now, now)

		mock.ExpectQuery(`SELECT .+ FROM ugc\.rights_requests WHERE content_id`).
			WithArgs("content-1").
			WillReturnRows(rows)

		requests, err := repo.ListRightsRequests(ctx, "content-1")
		require.NoError(t, err)
		require.Len(t, requests, 2)
		require.Equal(t, "req-2", requests[0].ID)
		require.Equal(t, "operator-2", requests[1].ResolvedBy)
		require.NotNil(t, requests[1].ResolvedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
