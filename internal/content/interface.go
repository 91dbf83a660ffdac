package content

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)
	Discover(ctx context.Context, sc model.Scope, input DiscoverInput) (IngestOutput, error)
	GetContent(ctx context.Context, sc model.Scope, id string) (model.ContentItem, error)
	ListContent(ctx context.Context, sc model.Scope, input ListContentInput) (ListContentOutput, error)
	RefreshEngagement(ctx context.Context, sc model.Scope, id string) (model.ContentItem, error)
}
