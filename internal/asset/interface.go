package asset

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (model.DerivedAsset, error)
	GetJob(ctx context.Context, sc model.Scope, jobID string) (model.DerivedAsset, error)
	ListJobsByContent(ctx context.Context, sc model.Scope, contentID string) ([]model.DerivedAsset, error)

	// Process runs one job to completion. Single attempt: any failure marks
	// the job failed with its error message and is not retried.
	Process(ctx context.Context, input ProcessInput) error
}

// Producer publishes submitted jobs onto the job queue.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishAssetJob(ctx context.Context, job model.DerivedAsset) error
}
