package repository

import (
	"context"
	"time"

	"ugc-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateContentItem(ctx context.Context, opt CreateContentItemOptions) (model.ContentItem, bool, error)
	GetContentItemByID(ctx context.Context, id string) (model.ContentItem, error)
	ListContentItems(ctx context.Context, opt ListContentItemsOptions) ([]model.ContentItem, error)
	CountContentItems(ctx context.Context, opt ListContentItemsOptions) (int64, error)
	UpdateContentEngagement(ctx context.Context, opt UpdateEngagementOptions) (model.ContentItem, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetContentItem(ctx context.Context, id string) (model.ContentItem, error)
	SetContentItem(ctx context.Context, item model.ContentItem, ttl time.Duration) error
	DeleteContentItem(ctx context.Context, id string) error
}
