package inbox

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Promote(ctx context.Context, sc model.Scope, input PromoteInput) (model.InboxItem, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.InboxItem, error)
	GetInboxItem(ctx context.Context, sc model.Scope, id string) (model.InboxItem, error)
	ListInbox(ctx context.Context, sc model.Scope, input ListInboxInput) (ListInboxOutput, error)
	ListInboxByContent(ctx context.Context, sc model.Scope, contentID string) ([]model.InboxItem, error)
}
