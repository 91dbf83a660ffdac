package repository

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// RequestRights inserts a pending request and mirrors rights_status
	// requested onto the content row in one transaction.
	RequestRights(ctx context.Context, opt RequestRightsOptions) (model.RightsRequest, ContentRef, error)

	// ResolveRights moves the pending request to its decision and mirrors
	// the decision onto the content row in one transaction.
	ResolveRights(ctx context.Context, opt ResolveRightsOptions) (model.RightsRequest, ContentRef, error)

	ListRightsRequests(ctx context.Context, contentID string) ([]model.RightsRequest, error)
}
