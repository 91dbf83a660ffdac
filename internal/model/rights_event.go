package model

import "time"

// Rights event types carried on the notification queue.
const (
	RightsEventRequested = "rights.requested"
	RightsEventResolved  = "rights.resolved"
)

// RightsEvent is the notification payload published after a rights write
// commits. Consumed by the notifier worker.
type RightsEvent struct {
	Type          string    `json:"type"`
	RequestID     string    `json:"request_id"`
	ContentID     string    `json:"content_id"`
	BrandID       string    `json:"brand_id"`
	Status        string    `json:"status"`
	CreatorHandle string    `json:"creator_handle"`
	Platform      string    `json:"platform"`
	Permalink     string    `json:"permalink"`
	OccurredAt    time.Time `json:"occurred_at"`
}
