package http

import (
	"errors"

	"ugc-srv/internal/content"
	pkgErrors "ugc-srv/pkg/errors"
)

var (
	errContentNotFound        = pkgErrors.NewHTTPError(404, "Content item not found")
	errEmptyBatch             = pkgErrors.NewHTTPError(400, "Batch is empty")
	errInvalidPlatform        = pkgErrors.NewHTTPError(400, "Invalid platform")
	errInvalidMediaType       = pkgErrors.NewHTTPError(400, "Invalid media type")
	errMissingPlatformContent = pkgErrors.NewHTTPError(400, "Platform content ID is required")
	errMissingMediaURL        = pkgErrors.NewHTTPError(400, "Media URL is required")
	errNoSearchTerms          = pkgErrors.NewHTTPError(400, "At least one hashtag, keyword or mention is required")
	errEngagementUnavailable  = pkgErrors.NewHTTPError(502, "Engagement data unavailable for this post")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, content.ErrContentNotFound):
		return errContentNotFound
	case errors.Is(err, content.ErrEmptyBatch):
		return errEmptyBatch
	case errors.Is(err, content.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, content.ErrInvalidMediaType):
		return errInvalidMediaType
	case errors.Is(err, content.ErrMissingPlatformContentID):
		return errMissingPlatformContent
	case errors.Is(err, content.ErrMissingMediaURL):
		return errMissingMediaURL
	case errors.Is(err, content.ErrNoSearchTerms):
		return errNoSearchTerms
	case errors.Is(err, content.ErrEngagementUnavailable):
		return errEngagementUnavailable
	default:
		panic(err)
	}
}
