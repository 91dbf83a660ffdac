package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"ugc-srv/internal/asset"
	"ugc-srv/internal/asset/repository"
	"ugc-srv/internal/model"
)

// Submit validates and records a new job, publishes it to the queue and
// returns immediately. Identical submissions produce independent jobs.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input asset.SubmitInput) (model.DerivedAsset, error) {
	if !model.IsValidAssetKind(input.Kind) {
		return model.DerivedAsset{}, asset.ErrInvalidKind
	}
	if err := validateOptions(input.Kind, input.Options); err != nil {
		return model.DerivedAsset{}, err
	}

	job, err := uc.repo.CreateDerivedAsset(ctx, repository.CreateDerivedAssetOptions{
		ContentID:   input.ContentID,
		Kind:        input.Kind,
		Options:     input.Options,
		RequestedBy: sc.UserID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrContentMissing) {
			return model.DerivedAsset{}, asset.ErrContentNotFound
		}
		return model.DerivedAsset{}, err
	}

	if err := uc.producer.PublishAssetJob(ctx, job); err != nil {
		uc.l.Errorf(ctx, "asset.usecase.Submit: publish job %s failed: %v", job.ID, err)
		failed, markErr := uc.repo.MarkDerivedAssetFailed(ctx, job.ID, "job could not be enqueued")
		if markErr != nil {
			uc.l.Errorf(ctx, "asset.usecase.Submit: mark job %s failed: %v", job.ID, markErr)
			return job, nil
		}
		return failed, nil
	}

	return job, nil
}

// validateOptions checks that the payload parses for the given kind and
// carries its required fields.
func validateOptions(kind string, raw json.RawMessage) error {
	switch kind {
	case model.AssetKindEdit:
		var opts model.EditOptions
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &opts); err != nil {
				return asset.ErrInvalidOptions
			}
		}
	case model.AssetKindVoiceover:
		var opts model.VoiceoverOptions
		if len(raw) == 0 {
			return asset.ErrInvalidOptions
		}
		if err := json.Unmarshal(raw, &opts); err != nil {
			return asset.ErrInvalidOptions
		}
		if opts.Script == "" {
			return asset.ErrInvalidOptions
		}
	case model.AssetKindHotspot:
		var opts model.HotspotOptions
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &opts); err != nil {
				return asset.ErrInvalidOptions
			}
		}
	}
	return nil
}
