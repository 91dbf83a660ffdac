package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"ugc-srv/internal/inbox/repository"
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

func inboxRows(status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "content_id", "status", "notes", "reviewed_by", "reviewed_at", "created_at", "updated_at",
	}).AddRow("inbox-1", "content-1", status, "", "", nil, now, now)
}

func TestCreateInboxItem(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts with status new", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`INSERT INTO ugc\.inbox_items`).
			WithArgs(sqlmock.AnyArg(), "content-1", model.InboxStatusNew, "worth a look", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(inboxRows(model.InboxStatusNew))

		item, err := repo.CreateInboxItem(ctx, repository.CreateInboxItemOptions{ContentID: "content-1", Notes: "worth a look"})
		require.NoError(t, err)
		require.Equal(t, model.InboxStatusNew, item.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation maps to content missing", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`INSERT INTO ugc\.inbox_items`).
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.CreateInboxItem(ctx, repository.CreateInboxItemOptions{ContentID: "ghost"})
		require.ErrorIs(t, err, repository.ErrContentMissing)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateInboxStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("guards the transition on the expected status", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`UPDATE ugc\.inbox_items`).
			WithArgs(model.InboxStatusApproved, nil, "reviewer-1", sqlmock.AnyArg(), sqlmock.AnyArg(), "inbox-1", model.InboxStatusNew).
			WillReturnRows(inboxRows(model.InboxStatusApproved))

		item, err := repo.UpdateInboxStatus(ctx, repository.UpdateInboxStatusOptions{
			ID:         "inbox-1",
			FromStatus: model.InboxStatusNew,
			ToStatus:   model.InboxStatusApproved,
			ReviewedBy: "reviewer-1",
		})
		require.NoError(t, err)
		require.Equal(t, model.InboxStatusApproved, item.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero matched rows reports the lost race", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`UPDATE ugc\.inbox_items`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "content_id", "status", "notes", "reviewed_by", "reviewed_at", "created_at", "updated_at",
			}))

		_, err := repo.UpdateInboxStatus(ctx, repository.UpdateInboxStatusOptions{
			ID:         "inbox-1",
			FromStatus: model.InboxStatusNew,
			ToStatus:   model.InboxStatusApproved,
		})
		require.ErrorIs(t, err, repository.ErrStatusMoved)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListInboxItems(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status with paging", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "content_id", "status", "notes", "reviewed_by", "reviewed_at", "created_at", "updated_at",
		}).
			AddRow("inbox-2", "content-2", model.InboxStatusNew, "", "", nil, now, now).
			AddRow("inbox-1", "content-1", model.InboxStatusNew, "", "", nil, now, now)

		mock.ExpectQuery(`SELECT .+ FROM ugc\.inbox_items WHERE 1=1 AND status = \$1 ORDER BY created_at DESC LIMIT \$2`).
			WithArgs(model.InboxStatusNew, 20).
			WillReturnRows(rows)

		items, err := repo.ListInboxItems(ctx, repository.ListInboxItemsOptions{Status: model.InboxStatusNew, Limit: 20})
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
