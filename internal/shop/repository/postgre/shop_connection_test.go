package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"ugc-srv/internal/shop/repository"
	"ugc-srv/pkg/log"
)

func newMock(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.Init(log.ZapConfig{Level: "error"})), mock
}

func connectionRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "shop_domain", "access_token_enc", "scopes", "connected_by", "created_at", "updated_at",
	}).AddRow("conn-1", "acme.myshopify.com", "enc-token", "read_products", "operator-1", now, now)
}

func TestUpsertShopConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts or replaces on the shop domain", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`(?s)INSERT INTO ugc\.shop_connections.+ON CONFLICT \(shop_domain\) DO UPDATE`).
			WithArgs(sqlmock.AnyArg(), "acme.myshopify.com", "enc-token", "read_products", "operator-1", sqlmock.AnyArg()).
			WillReturnRows(connectionRow())

		conn, err := repo.UpsertShopConnection(ctx, repository.UpsertShopConnectionOptions{
			ShopDomain:     "acme.myshopify.com",
			AccessTokenEnc: "enc-token",
			Scopes:         "read_products",
			ConnectedBy:    "operator-1",
		})
		require.NoError(t, err)
		require.Equal(t, "acme.myshopify.com", conn.ShopDomain)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetShopConnectionByDomain(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown shop maps to not found", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`SELECT .+ FROM ugc\.shop_connections WHERE shop_domain`).
			WithArgs("ghost.myshopify.com").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "shop_domain", "access_token_enc", "scopes", "connected_by", "created_at", "updated_at",
			}))

		_, err := repo.GetShopConnectionByDomain(ctx, "ghost.myshopify.com")
		require.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
