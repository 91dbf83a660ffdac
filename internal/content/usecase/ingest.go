package usecase

import (
	"context"

	"ugc-srv/internal/content"
	"ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/openai"
)

// Ingest validates and stores a batch of content items. Items already in
// the pool for their (platform, platform content id) pair are skipped.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input content.IngestInput) (content.IngestOutput, error) {
	if len(input.Items) == 0 {
		return content.IngestOutput{}, content.ErrEmptyBatch
	}

	for _, item := range input.Items {
		if err := validateIngestItem(item); err != nil {
			return content.IngestOutput{}, err
		}
	}

	var output content.IngestOutput
	for _, item := range input.Items {
		opt := uc.classifyItem(ctx, item)

		created, ok, err := uc.repo.CreateContentItem(ctx, opt)
		if err != nil {
			// One bad row should not sink the rest of the batch.
			uc.l.Errorf(ctx, "content.usecase.Ingest: store %s/%s failed: %v", item.Platform, item.PlatformContentID, err)
			output.Failed++
			continue
		}
		if !ok {
			output.Skipped++
			continue
		}

		output.Created++
		output.Items = append(output.Items, created)
	}

	uc.l.Infof(ctx, "content.usecase.Ingest: created=%d skipped=%d failed=%d", output.Created, output.Skipped, output.Failed)

	return output, nil
}

// Discover runs a sweep against the listening provider and ingests the results.
func (uc *implUseCase) Discover(ctx context.Context, sc model.Scope, input content.DiscoverInput) (content.IngestOutput, error) {
	if len(input.Hashtags) == 0 && len(input.Keywords) == 0 && len(input.Mentions) == 0 {
		return content.IngestOutput{}, content.ErrNoSearchTerms
	}

	platforms := input.Platforms
	if len(platforms) == 0 {
		platforms = model.ValidPlatforms
	}
	for _, p := range platforms {
		if !model.IsValidPlatform(p) {
			return content.IngestOutput{}, content.ErrInvalidPlatform
		}
	}

	var items []content.IngestItem
	for _, p := range platforms {
		posts, err := uc.platform.Search(ctx, platformSearchInput(p, input))
		if err != nil {
			// One network failing should not sink the whole sweep.
			uc.l.Warnf(ctx, "content.usecase.Discover: search %s failed: %v", p, err)
			continue
		}

		for _, post := range posts {
			items = append(items, toIngestItem(p, post))
		}
	}

	if len(items) == 0 {
		return content.IngestOutput{}, nil
	}

	return uc.Ingest(ctx, sc, content.IngestInput{Items: items})
}

// classifyItem asks the classifier for a verdict. On failure the item is
// stored with neutral defaults and marked unclassified so it can be
// re-scored later.
func (uc *implUseCase) classifyItem(ctx context.Context, item content.IngestItem) repository.CreateContentItemOptions {
	opt := repository.CreateContentItemOptions{
		Platform:            item.Platform,
		PlatformContentID:   item.PlatformContentID,
		AuthorID:            item.AuthorID,
		AuthorHandle:        item.AuthorHandle,
		AuthorFollowerCount: item.AuthorFollowerCount,
		AuthorVerified:      item.AuthorVerified,
		Caption:             item.Caption,
		Hashtags:            item.Hashtags,
		Location:            item.Location,
		MediaType:           item.MediaType,
		MediaURL:            item.MediaURL,
		ThumbnailURL:        item.ThumbnailURL,
		Permalink:           item.Permalink,
		DurationSeconds:     item.DurationSeconds,
		Likes:               item.Likes,
		Comments:            item.Comments,
		Shares:              item.Shares,
		Views:               item.Views,
		PostedAt:            item.PostedAt,
	}

	verdict, err := uc.openai.Classify(ctx, openai.ClassifyInput{
		Caption:   item.Caption,
		MediaURL:  item.MediaURL,
		MediaType: item.MediaType,
	})
	if err != nil {
		uc.l.Warnf(ctx, "content.usecase.classifyItem: classifier failed for %s/%s: %v",
			item.Platform, item.PlatformContentID, err)
		opt.Category = "other"
		opt.Sentiment = model.SentimentNeutral
		opt.BrandSafe = false
		opt.Classified = false
		return opt
	}

	opt.Category = verdict.Category
	opt.Sentiment = verdict.Sentiment
	opt.SentimentScore = verdict.SentimentScore
	opt.QualityScore = verdict.QualityScore
	opt.BrandSafe = verdict.BrandSafe
	opt.Tags = verdict.Tags
	opt.Classified = true

	return opt
}

func validateIngestItem(item content.IngestItem) error {
	if !model.IsValidPlatform(item.Platform) {
		return content.ErrInvalidPlatform
	}
	if !model.IsValidMediaType(item.MediaType) {
		return content.ErrInvalidMediaType
	}
	if item.PlatformContentID == "" {
		return content.ErrMissingPlatformContentID
	}
	if item.MediaURL == "" {
		return content.ErrMissingMediaURL
	}
	return nil
}
