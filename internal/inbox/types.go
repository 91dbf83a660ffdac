package inbox

import (
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
)

// PromoteInput moves a content item into the review pipeline.
type PromoteInput struct {
	ContentID string
	Notes     string
}

// UpdateStatusInput moves an inbox item along the review graph. Notes are
// overwritten only when provided.
type UpdateStatusInput struct {
	ID     string
	Status string
	Notes  *string
}

// ListInboxInput filters the review queue.
type ListInboxInput struct {
	Status string

	PaginateQuery paginator.PaginateQuery
}

// ListInboxOutput is a page of inbox items.
type ListInboxOutput struct {
	Items     []model.InboxItem
	Paginator paginator.Paginator
}
