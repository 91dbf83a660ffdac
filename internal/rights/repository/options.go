package repository

import "encoding/json"

type RequestRightsOptions struct {
	ContentID   string
	BrandID     string
	Terms       json.RawMessage
	RequestedBy string
}

type ResolveRightsOptions struct {
	ContentID  string
	Decision   string
	ResolvedBy string
}

// ContentRef carries the content fields needed to build a notification
// event, read inside the same transaction as the rights write.
type ContentRef struct {
	AuthorHandle string
	Platform     string
	Permalink    string
}
