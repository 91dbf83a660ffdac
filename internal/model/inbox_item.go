package model

import "time"

// Inbox status constants
const (
	InboxStatusNew       = "new"
	InboxStatusReviewed  = "reviewed"
	InboxStatusApproved  = "approved"
	InboxStatusRejected  = "rejected"
	InboxStatusPublished = "published"
)

// inboxTransitions holds the allowed status transitions. Rejected and
// published are terminal.
var inboxTransitions = map[string][]string{
	InboxStatusNew:      {InboxStatusReviewed, InboxStatusApproved, InboxStatusRejected},
	InboxStatusReviewed: {InboxStatusApproved, InboxStatusRejected},
	InboxStatusApproved: {InboxStatusPublished},
}

// IsValidInboxStatus reports whether the status is one of the known states.
func IsValidInboxStatus(s string) bool {
	switch s {
	case InboxStatusNew, InboxStatusReviewed, InboxStatusApproved, InboxStatusRejected, InboxStatusPublished:
		return true
	}
	return false
}

// CanTransitionInbox reports whether moving from one status to another is allowed.
func CanTransitionInbox(from, to string) bool {
	for _, next := range inboxTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InboxItem is a content item promoted into the review pipeline.
type InboxItem struct {
	ID         string
	ContentID  string
	Status     string
	Notes      string
	ReviewedBy string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Content is attached on reads that join the source item.
	Content *ContentItem
}
