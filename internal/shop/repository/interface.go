package repository

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	UpsertShopConnection(ctx context.Context, opts UpsertShopConnectionOptions) (model.ShopConnection, error)
	GetShopConnectionByDomain(ctx context.Context, shopDomain string) (model.ShopConnection, error)
	ListShopConnections(ctx context.Context) ([]model.ShopConnection, error)
}
