package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ugc-srv/internal/asset"
	"ugc-srv/internal/asset/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/openai"
	"ugc-srv/pkg/scope"
	"ugc-srv/pkg/shopify"
)

// Process runs one job. Single attempt: any failure marks the job failed
// with its error message, partial output is discarded.
func (uc *implUseCase) Process(ctx context.Context, input asset.ProcessInput) error {
	job, err := uc.repo.GetDerivedAssetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return asset.ErrJobNotFound
		}
		return err
	}

	// Redelivered or already resolved jobs are skipped.
	if job.Status != model.AssetStatusProcessing {
		uc.l.Warnf(ctx, "asset.usecase.Process: job %s already %s, skipping", job.ID, job.Status)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			uc.fail(ctx, job.ID, fmt.Sprintf("panic: %v", r))
		}
	}()

	content, err := uc.contentRepo.GetContentItemByID(ctx, job.ContentID)
	if err != nil {
		uc.fail(ctx, job.ID, fmt.Sprintf("content lookup failed: %v", err))
		return nil
	}

	var result repository.MarkCompletedOptions
	switch job.Kind {
	case model.AssetKindEdit:
		result, err = uc.runEdit(ctx, job, content)
	case model.AssetKindVoiceover:
		result, err = uc.runVoiceover(ctx, job)
	case model.AssetKindHotspot:
		result, err = uc.runHotspot(ctx, job, content)
	default:
		err = fmt.Errorf("unsupported kind %q", job.Kind)
	}
	if err != nil {
		uc.fail(ctx, job.ID, err.Error())
		return nil
	}

	result.ID = job.ID
	if _, err := uc.repo.MarkDerivedAssetCompleted(ctx, result); err != nil {
		uc.l.Errorf(ctx, "asset.usecase.Process: mark job %s completed failed: %v", job.ID, err)
		return err
	}

	uc.l.Infof(ctx, "asset.usecase.Process: job %s (%s) completed", job.ID, job.Kind)
	return nil
}

func (uc *implUseCase) fail(ctx context.Context, jobID, reason string) {
	uc.l.Errorf(ctx, "asset.usecase.Process: job %s failed: %s", jobID, reason)
	if _, err := uc.repo.MarkDerivedAssetFailed(ctx, jobID, reason); err != nil {
		uc.l.Errorf(ctx, "asset.usecase.Process: mark job %s failed: %v", jobID, err)
	}
}

func (uc *implUseCase) runEdit(ctx context.Context, job model.DerivedAsset, content model.ContentItem) (repository.MarkCompletedOptions, error) {
	var opts model.EditOptions
	if len(job.Options) > 0 {
		if err := json.Unmarshal(job.Options, &opts); err != nil {
			return repository.MarkCompletedOptions{}, fmt.Errorf("decode edit options: %w", err)
		}
	}

	img, err := uc.ai.EditImage(ctx, openai.EditInput{
		ImageURL:   content.MediaURL,
		Filter:     opts.Filter,
		Brightness: opts.Brightness,
		Contrast:   opts.Contrast,
		CropRatio:  opts.CropRatio,
		LogoURL:    opts.LogoURL,
	})
	if err != nil {
		return repository.MarkCompletedOptions{}, fmt.Errorf("image edit: %w", err)
	}

	objectName := fmt.Sprintf("edits/%s.png", job.ID)
	if err := uc.upload(ctx, objectName, img, "image/png"); err != nil {
		return repository.MarkCompletedOptions{}, err
	}

	return repository.MarkCompletedOptions{OutputURL: objectName}, nil
}

func (uc *implUseCase) runVoiceover(ctx context.Context, job model.DerivedAsset) (repository.MarkCompletedOptions, error) {
	var opts model.VoiceoverOptions
	if err := json.Unmarshal(job.Options, &opts); err != nil {
		return repository.MarkCompletedOptions{}, fmt.Errorf("decode voiceover options: %w", err)
	}
	if opts.Script == "" {
		return repository.MarkCompletedOptions{}, fmt.Errorf("voiceover script is required")
	}

	speech, err := uc.ai.Speak(ctx, openai.SpeechInput{
		Script:   opts.Script,
		Voice:    opts.Voice,
		Language: opts.Language,
		Speed:    opts.Speed,
	})
	if err != nil {
		return repository.MarkCompletedOptions{}, fmt.Errorf("speech synthesis: %w", err)
	}

	objectName := fmt.Sprintf("voiceovers/%s.mp3", job.ID)
	if err := uc.upload(ctx, objectName, speech.Audio, "audio/mpeg"); err != nil {
		return repository.MarkCompletedOptions{}, err
	}

	return repository.MarkCompletedOptions{
		AudioURL:        objectName,
		DurationSeconds: speech.DurationSeconds,
	}, nil
}

func (uc *implUseCase) runHotspot(ctx context.Context, job model.DerivedAsset, content model.ContentItem) (repository.MarkCompletedOptions, error) {
	var opts model.HotspotOptions
	if len(job.Options) > 0 {
		if err := json.Unmarshal(job.Options, &opts); err != nil {
			return repository.MarkCompletedOptions{}, fmt.Errorf("decode hotspot options: %w", err)
		}
	}

	objects, err := uc.ai.DetectObjects(ctx, content.MediaURL)
	if err != nil {
		return repository.MarkCompletedOptions{}, fmt.Errorf("object detection: %w", err)
	}

	hotspots := make([]model.Hotspot, 0, len(objects))
	for _, obj := range objects {
		hotspots = append(hotspots, model.Hotspot{
			Label: obj.Label,
			X:     obj.X,
			Y:     obj.Y,
			W:     obj.W,
			H:     obj.H,
		})
	}

	// Product matching degrades to unlinked hotspots when the shop read fails.
	if opts.ShopDomain != "" {
		sc := scope.GetScopeFromContext(ctx)
		products, err := uc.shop.ListProducts(ctx, sc, opts.ShopDomain)
		if err != nil {
			uc.l.Warnf(ctx, "asset.usecase.runHotspot: product read for %s failed: %v", opts.ShopDomain, err)
		} else {
			matchProducts(hotspots, products)
		}
	}

	return repository.MarkCompletedOptions{Hotspots: hotspots}, nil
}

// matchProducts links hotspots to products by label, case-insensitive
// substring match in either direction. Unmatched hotspots keep their label.
func matchProducts(hotspots []model.Hotspot, products []shopify.Product) {
	for i := range hotspots {
		label := strings.ToLower(hotspots[i].Label)
		if label == "" {
			continue
		}
		for _, p := range products {
			title := strings.ToLower(p.Title)
			if !strings.Contains(title, label) && !strings.Contains(label, title) {
				continue
			}
			hotspots[i].ProductID = p.ID
			if len(p.Variants) > 0 {
				hotspots[i].Price = p.Variants[0].Price
			}
			break
		}
	}
}
