package model

import "time"

// Rights status constants. Content items carry unknown | requested |
// approved | declined; request records carry pending | approved | declined.
const (
	RightsStatusUnknown   = "unknown"
	RightsStatusPending   = "pending"
	RightsStatusRequested = "requested"
	RightsStatusApproved  = "approved"
	RightsStatusDeclined  = "declined"
)

// IsRightsDecision reports whether the status is a valid answer to a request.
func IsRightsDecision(s string) bool {
	return s == RightsStatusApproved || s == RightsStatusDeclined
}

// RightsRequest is an outreach record asking a creator for usage permission
// on behalf of a brand.
type RightsRequest struct {
	ID        string
	ContentID string
	BrandID   string

	// Terms holds the proposed usage terms as JSON.
	Terms []byte

	Status      string
	RequestedBy string
	ResolvedBy  string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
