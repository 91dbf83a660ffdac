package rights

import "encoding/json"

// RequestInput opens a usage rights request for a content item on behalf
// of a brand.
type RequestInput struct {
	ContentID string
	BrandID   string
	Terms     json.RawMessage
}

// ResolveInput answers the pending request for a content item.
type ResolveInput struct {
	ContentID string
	Decision  string
}
