package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ugc-srv/internal/model"
	"ugc-srv/internal/shop/repository"
)

const shopColumns = `id, shop_domain, access_token_enc, scopes, connected_by, created_at, updated_at`

// UpsertShopConnection inserts a connection for the shop domain, or replaces
// the stored token and scopes when the shop is already connected.
func (r *implRepository) UpsertShopConnection(ctx context.Context, opts repository.UpsertShopConnectionOptions) (model.ShopConnection, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO ugc.shop_connections (id, shop_domain, access_token_enc, scopes, connected_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (shop_domain) DO UPDATE SET
			access_token_enc = EXCLUDED.access_token_enc,
			scopes = EXCLUDED.scopes,
			connected_by = EXCLUDED.connected_by,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + shopColumns

	row := r.db.QueryRowContext(ctx, query,
		id, opts.ShopDomain, opts.AccessTokenEnc, opts.Scopes, opts.ConnectedBy, now,
	)

	conn, err := scanShopConnection(row)
	if err != nil {
		return model.ShopConnection{}, fmt.Errorf("UpsertShopConnection: %w", err)
	}

	return conn, nil
}

// GetShopConnectionByDomain returns the connection for a shop domain.
func (r *implRepository) GetShopConnectionByDomain(ctx context.Context, shopDomain string) (model.ShopConnection, error) {
	query := `SELECT ` + shopColumns + ` FROM ugc.shop_connections WHERE shop_domain = $1`

	conn, err := scanShopConnection(r.db.QueryRowContext(ctx, query, shopDomain))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ShopConnection{}, repository.ErrNotFound
		}
		return model.ShopConnection{}, fmt.Errorf("GetShopConnectionByDomain: %w", err)
	}

	return conn, nil
}

// ListShopConnections returns every connected shop, newest first.
func (r *implRepository) ListShopConnections(ctx context.Context) ([]model.ShopConnection, error) {
	query := `SELECT ` + shopColumns + ` FROM ugc.shop_connections ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListShopConnections: %w", err)
	}
	defer rows.Close()

	conns := []model.ShopConnection{}
	for rows.Next() {
		conn, err := scanShopConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("ListShopConnections: %w", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListShopConnections: %w", err)
	}

	return conns, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShopConnection(row rowScanner) (model.ShopConnection, error) {
	var conn model.ShopConnection
	err := row.Scan(
		&conn.ID,
		&conn.ShopDomain,
		&conn.AccessTokenEnc,
		&conn.Scopes,
		&conn.ConnectedBy,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)
	return conn, err
}
