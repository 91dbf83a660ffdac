package rights

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Request(ctx context.Context, sc model.Scope, input RequestInput) (model.RightsRequest, error)
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (model.RightsRequest, error)
	ListRequests(ctx context.Context, sc model.Scope, contentID string) ([]model.RightsRequest, error)
}

//go:generate mockery --name Publisher
// Publisher pushes rights events onto the notification queue after the
// database write has committed. Failures are logged, never surfaced.
type Publisher interface {
	PublishRightsEvent(ctx context.Context, event model.RightsEvent) error
}
