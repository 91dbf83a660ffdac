package repository

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateInboxItem(ctx context.Context, opt CreateInboxItemOptions) (model.InboxItem, error)
	GetInboxItemByID(ctx context.Context, id string) (model.InboxItem, error)
	ListInboxItems(ctx context.Context, opt ListInboxItemsOptions) ([]model.InboxItem, error)
	CountInboxItems(ctx context.Context, opt ListInboxItemsOptions) (int64, error)
	UpdateInboxStatus(ctx context.Context, opt UpdateInboxStatusOptions) (model.InboxItem, error)
}
