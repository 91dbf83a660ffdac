package content

import "errors"

// Domain errors
var (
	// ErrContentNotFound - content item does not exist
	ErrContentNotFound = errors.New("content: item not found")

	// ErrEmptyBatch - ingest batch has no items
	ErrEmptyBatch = errors.New("content: batch is empty")

	// ErrInvalidPlatform - platform is not supported
	ErrInvalidPlatform = errors.New("content: invalid platform")

	// ErrInvalidMediaType - media type is not supported
	ErrInvalidMediaType = errors.New("content: invalid media type")

	// ErrMissingPlatformContentID - platform content id is required
	ErrMissingPlatformContentID = errors.New("content: platform content id is required")

	// ErrMissingMediaURL - media url is required
	ErrMissingMediaURL = errors.New("content: media url is required")

	// ErrNoSearchTerms - discovery needs at least one hashtag, keyword or mention
	ErrNoSearchTerms = errors.New("content: no search terms")

	// ErrEngagementUnavailable - provider no longer knows the post
	ErrEngagementUnavailable = errors.New("content: engagement unavailable")
)
