package repository

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateDerivedAsset(ctx context.Context, opts CreateDerivedAssetOptions) (model.DerivedAsset, error)
	GetDerivedAssetByID(ctx context.Context, id string) (model.DerivedAsset, error)
	ListDerivedAssetsByContent(ctx context.Context, contentID string) ([]model.DerivedAsset, error)
	MarkDerivedAssetCompleted(ctx context.Context, opts MarkCompletedOptions) (model.DerivedAsset, error)
	MarkDerivedAssetFailed(ctx context.Context, id, errorMessage string) (model.DerivedAsset, error)
}
