package usecase

import (
	"context"
	"errors"

	"ugc-srv/internal/inbox"
	"ugc-srv/internal/inbox/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
)

// Promote moves a content item into the review pipeline with status new.
// Promoting the same content twice creates independent inbox items.
func (uc *implUseCase) Promote(ctx context.Context, sc model.Scope, input inbox.PromoteInput) (model.InboxItem, error) {
	item, err := uc.repo.CreateInboxItem(ctx, repository.CreateInboxItemOptions{
		ContentID: input.ContentID,
		Notes:     input.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrContentMissing) {
			return model.InboxItem{}, inbox.ErrContentNotFound
		}
		return model.InboxItem{}, err
	}

	uc.l.Infof(ctx, "inbox.usecase.Promote: content %s promoted as %s by %s",
		input.ContentID, item.ID, sc.UserID)

	return item, nil
}

// UpdateStatus moves an item along the review graph. The write is guarded on
// the status observed here, so a concurrent transition surfaces as
// ErrStatusConflict instead of silently overwriting.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input inbox.UpdateStatusInput) (model.InboxItem, error) {
	if !model.IsValidInboxStatus(input.Status) {
		return model.InboxItem{}, inbox.ErrInvalidStatus
	}

	current, err := uc.repo.GetInboxItemByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.InboxItem{}, inbox.ErrInboxItemNotFound
		}
		return model.InboxItem{}, err
	}

	if !model.CanTransitionInbox(current.Status, input.Status) {
		return model.InboxItem{}, inbox.ErrInvalidTransition
	}

	item, err := uc.repo.UpdateInboxStatus(ctx, repository.UpdateInboxStatusOptions{
		ID:         input.ID,
		FromStatus: current.Status,
		ToStatus:   input.Status,
		Notes:      input.Notes,
		ReviewedBy: sc.UserID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrStatusMoved) {
			return model.InboxItem{}, inbox.ErrStatusConflict
		}
		return model.InboxItem{}, err
	}

	return item, nil
}

// GetInboxItem returns one item with its source content attached.
func (uc *implUseCase) GetInboxItem(ctx context.Context, sc model.Scope, id string) (model.InboxItem, error) {
	item, err := uc.repo.GetInboxItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.InboxItem{}, inbox.ErrInboxItemNotFound
		}
		return model.InboxItem{}, err
	}

	return item, nil
}

// ListInbox returns a page of the review queue.
func (uc *implUseCase) ListInbox(ctx context.Context, sc model.Scope, input inbox.ListInboxInput) (inbox.ListInboxOutput, error) {
	if input.Status != "" && !model.IsValidInboxStatus(input.Status) {
		return inbox.ListInboxOutput{}, inbox.ErrInvalidStatus
	}

	input.PaginateQuery.Adjust()

	opt := repository.ListInboxItemsOptions{
		Status: input.Status,
		Limit:  int(input.PaginateQuery.Limit),
		Offset: int(input.PaginateQuery.Offset()),
	}

	total, err := uc.repo.CountInboxItems(ctx, opt)
	if err != nil {
		return inbox.ListInboxOutput{}, err
	}

	items, err := uc.repo.ListInboxItems(ctx, opt)
	if err != nil {
		return inbox.ListInboxOutput{}, err
	}

	return inbox.ListInboxOutput{
		Items: items,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(items)),
			PerPage:     input.PaginateQuery.Limit,
			CurrentPage: input.PaginateQuery.Page,
		},
	}, nil
}

// ListInboxByContent returns every inbox item spawned from one content item.
func (uc *implUseCase) ListInboxByContent(ctx context.Context, sc model.Scope, contentID string) ([]model.InboxItem, error) {
	return uc.repo.ListInboxItems(ctx, repository.ListInboxItemsOptions{
		ContentID: contentID,
	})
}
