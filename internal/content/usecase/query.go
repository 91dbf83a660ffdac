package usecase

import (
	"context"
	"errors"
	"time"

	"ugc-srv/internal/content"
	"ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
	"ugc-srv/pkg/platform"
)

// cacheTTL bounds how stale a cached content read may be.
const cacheTTL = 5 * time.Minute

// GetContent returns one item, serving from the cache when possible.
func (uc *implUseCase) GetContent(ctx context.Context, sc model.Scope, id string) (model.ContentItem, error) {
	if item, err := uc.cache.GetContentItem(ctx, id); err == nil {
		return item, nil
	}

	item, err := uc.repo.GetContentItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ContentItem{}, content.ErrContentNotFound
		}
		return model.ContentItem{}, err
	}

	if err := uc.cache.SetContentItem(ctx, item, cacheTTL); err != nil {
		uc.l.Warnf(ctx, "content.usecase.GetContent: cache set failed: %v", err)
	}

	return item, nil
}

// ListContent returns a filtered page of the pool.
func (uc *implUseCase) ListContent(ctx context.Context, sc model.Scope, input content.ListContentInput) (content.ListContentOutput, error) {
	input.PaginateQuery.Adjust()

	opt := repository.ListContentItemsOptions{
		Platform:     input.Platform,
		Category:     input.Category,
		Sentiment:    input.Sentiment,
		MediaType:    input.MediaType,
		RightsStatus: input.RightsStatus,
		BrandSafe:    input.BrandSafe,
		MinQuality:   input.MinQuality,
		Limit:        int(input.PaginateQuery.Limit),
		Offset:       int(input.PaginateQuery.Offset()),
	}

	total, err := uc.repo.CountContentItems(ctx, opt)
	if err != nil {
		return content.ListContentOutput{}, err
	}

	items, err := uc.repo.ListContentItems(ctx, opt)
	if err != nil {
		return content.ListContentOutput{}, err
	}

	return content.ListContentOutput{
		Items: items,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(items)),
			PerPage:     input.PaginateQuery.Limit,
			CurrentPage: input.PaginateQuery.Page,
		},
	}, nil
}

// RefreshEngagement pulls the current counters from the network and
// stores them, dropping any cached copy.
func (uc *implUseCase) RefreshEngagement(ctx context.Context, sc model.Scope, id string) (model.ContentItem, error) {
	item, err := uc.repo.GetContentItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ContentItem{}, content.ErrContentNotFound
		}
		return model.ContentItem{}, err
	}

	engagement, err := uc.platform.GetEngagement(ctx, item.Platform, item.PlatformContentID)
	if err != nil {
		if errors.Is(err, platform.ErrPostNotFound) {
			return model.ContentItem{}, content.ErrEngagementUnavailable
		}
		return model.ContentItem{}, err
	}

	updated, err := uc.repo.UpdateContentEngagement(ctx, repository.UpdateEngagementOptions{
		ID:       item.ID,
		Likes:    engagement.Likes,
		Comments: engagement.Comments,
		Shares:   engagement.Shares,
		Views:    engagement.Views,
	})
	if err != nil {
		return model.ContentItem{}, err
	}

	if err := uc.cache.DeleteContentItem(ctx, id); err != nil {
		uc.l.Warnf(ctx, "content.usecase.RefreshEngagement: cache delete failed: %v", err)
	}

	return updated, nil
}
