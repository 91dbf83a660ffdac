package shop

import (
	"context"

	"ugc-srv/internal/model"
	"ugc-srv/pkg/shopify"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Connect(ctx context.Context, sc model.Scope, input ConnectInput) (model.ShopConnection, error)
	ListConnections(ctx context.Context, sc model.Scope) ([]model.ShopConnection, error)
	ListProducts(ctx context.Context, sc model.Scope, shopDomain string) ([]shopify.Product, error)
}
