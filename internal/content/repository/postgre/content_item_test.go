package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"ugc-srv/internal/content/repository"
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

var contentRowColumns = []string{
	"id", "platform", "platform_content_id",
	"author_id", "author_handle", "author_follower_count", "author_verified",
	"caption", "hashtags", "location", "media_type", "media_url", "thumbnail_url", "permalink", "duration_seconds",
	"likes", "comments", "shares", "views",
	"category", "sentiment", "sentiment_score", "quality_score", "brand_safe", "tags", "classified",
	"rights_status", "posted_at", "discovered_at", "updated_at",
}

func contentRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(contentRowColumns).AddRow(
		"id-1", model.PlatformInstagram, "ig-1",
		"author-1", "@creator", int64(12000), true,
		"loving this product", []byte(`{summer,ootd}`), "", model.MediaTypeImage,
		"https://cdn.example.com/p1.jpg", "", "https://instagram.com/p/p1", 0.0,
		int64(120), int64(4), int64(2), int64(0),
		"lifestyle", model.SentimentPositive, 0.8, 0.7, true, []byte(`{outdoor}`), true,
		model.RightsStatusUnknown, now, now, now,
	)
}

func TestCreateContentItem(t *testing.T) {
	ctx := context.Background()
	opt := repository.CreateContentItemOptions{
		Platform:          model.PlatformInstagram,
		PlatformContentID: "ig-1",
		AuthorHandle:      "@creator",
		Caption:           "loving this product",
		Hashtags:          []string{"summer", "ootd"},
		MediaType:         model.MediaTypeImage,
		MediaURL:          "https://cdn.example.com/p1.jpg",
		Category:          "lifestyle",
		Sentiment:         model.SentimentPositive,
		BrandSafe:         true,
		Classified:        true,
	}

	t.Run("inserts with rights status unknown", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`INSERT INTO ugc\.content_items`).
			WillReturnRows(contentRow())

		item, created, err := repo.CreateContentItem(ctx, opt)
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, model.RightsStatusUnknown, item.RightsStatus)
		require.Equal(t, []string{"summer", "ootd"}, item.Hashtags)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflicting pair returns no row and no error", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`INSERT INTO ugc\.content_items`).
			WillReturnRows(sqlmock.NewRows(contentRowColumns))

		_, created, err := repo.CreateContentItem(ctx, opt)
		require.NoError(t, err)
		require.False(t, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListContentItems(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the filter set in order", func(t *testing.T) {
		repo, mock := newMock(t)

		brandSafe := true
		mock.ExpectQuery(`(?s)SELECT .+ FROM ugc\.content_items WHERE 1=1 AND platform = \$1 AND brand_safe = \$2 AND quality_score >= \$3 ORDER BY discovered_at DESC LIMIT \$4`).
			WithArgs(model.PlatformInstagram, true, 0.5, 20).
			WillReturnRows(contentRow())

		items, err := repo.ListContentItems(ctx, repository.ListContentItemsOptions{
			Platform:   model.PlatformInstagram,
			BrandSafe:  &brandSafe,
			MinQuality: 0.5,
			Limit:      20,
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateContentEngagement(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the counters", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`UPDATE ugc\.content_items`).
			WithArgs(int64(500), int64(10), int64(3), int64(9000), sqlmock.AnyArg(), "id-1").
			WillReturnRows(contentRow())

		_, err := repo.UpdateContentEngagement(ctx, repository.UpdateEngagementOptions{
			ID:       "id-1",
			Likes:    500,
			Comments: 10,
			Shares:   3,
			Views:    9000,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
