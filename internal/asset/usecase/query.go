package usecase

import (
	"context"
	"errors"

	"ugc-srv/internal/asset"
	"ugc-srv/internal/asset/repository"
	"ugc-srv/internal/model"
)

// GetJob returns one job. Completed edit and voiceover jobs carry presigned
// artifact download URLs.
func (uc *implUseCase) GetJob(ctx context.Context, sc model.Scope, jobID string) (model.DerivedAsset, error) {
	job, err := uc.repo.GetDerivedAssetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.DerivedAsset{}, asset.ErrJobNotFound
		}
		return model.DerivedAsset{}, err
	}

	uc.presignResultURLs(ctx, &job)

	return job, nil
}

// ListJobsByContent returns every job for a content item, newest first.
func (uc *implUseCase) ListJobsByContent(ctx context.Context, sc model.Scope, contentID string) ([]model.DerivedAsset, error) {
	jobs, err := uc.repo.ListDerivedAssetsByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		uc.presignResultURLs(ctx, &jobs[i])
	}

	return jobs, nil
}
