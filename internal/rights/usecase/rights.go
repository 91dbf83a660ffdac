package usecase

import (
	"context"
	"errors"
	"time"

	"ugc-srv/internal/model"
	"ugc-srv/internal/rights"
	"ugc-srv/internal/rights/repository"
)

// Request opens a usage rights request. The request row and the content
// rights_status mirror commit together; the notification event goes out
// only after the commit and never fails the call.
func (uc *implUseCase) Request(ctx context.Context, sc model.Scope, input rights.RequestInput) (model.RightsRequest, error) {
	if input.BrandID == "" {
		return model.RightsRequest{}, rights.ErrBrandRequired
	}

	req, ref, err := uc.repo.RequestRights(ctx, repository.RequestRightsOptions{
		ContentID:   input.ContentID,
		BrandID:     input.BrandID,
		Terms:       input.Terms,
		RequestedBy: sc.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrContentMissing):
			return model.RightsRequest{}, rights.ErrContentNotFound
		case errors.Is(err, repository.ErrAlreadyApproved):
			return model.RightsRequest{}, rights.ErrAlreadyApproved
		case errors.Is(err, repository.ErrRequestPending):
			return model.RightsRequest{}, rights.ErrRequestPending
		}
		return model.RightsRequest{}, err
	}

	uc.afterRightsWrite(ctx, model.RightsEventRequested, req, ref)

	return req, nil
}

// Resolve answers the pending request with approved or declined.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input rights.ResolveInput) (model.RightsRequest, error) {
	if !model.IsRightsDecision(input.Decision) {
		return model.RightsRequest{}, rights.ErrInvalidDecision
	}

	req, ref, err := uc.repo.ResolveRights(ctx, repository.ResolveRightsOptions{
		ContentID:  input.ContentID,
		Decision:   input.Decision,
		ResolvedBy: sc.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrContentMissing):
			return model.RightsRequest{}, rights.ErrContentNotFound
		case errors.Is(err, repository.ErrNoPending):
			return model.RightsRequest{}, rights.ErrNoPendingRequest
		}
		return model.RightsRequest{}, err
	}

	uc.afterRightsWrite(ctx, model.RightsEventResolved, req, ref)

	return req, nil
}

// ListRequests returns the full request history for a content item.
func (uc *implUseCase) ListRequests(ctx context.Context, sc model.Scope, contentID string) ([]model.RightsRequest, error) {
	return uc.repo.ListRightsRequests(ctx, contentID)
}

// afterRightsWrite drops the cached content item and publishes the
// notification event. Both are best effort.
func (uc *implUseCase) afterRightsWrite(ctx context.Context, eventType string, req model.RightsRequest, ref repository.ContentRef) {
	if err := uc.cache.DeleteContentItem(ctx, req.ContentID); err != nil {
		uc.l.Warnf(ctx, "rights.usecase.afterRightsWrite: cache delete failed: %v", err)
	}

	event := model.RightsEvent{
		Type:          eventType,
		RequestID:     req.ID,
		ContentID:     req.ContentID,
		BrandID:       req.BrandID,
		Status:        req.Status,
		CreatorHandle: ref.AuthorHandle,
		Platform:      ref.Platform,
		Permalink:     ref.Permalink,
		OccurredAt:    time.Now(),
	}
	if err := uc.publisher.PublishRightsEvent(ctx, event); err != nil {
		uc.l.Errorf(ctx, "rights.usecase.afterRightsWrite: publish %s failed: %v", eventType, err)
	}
}
