package http

import (
	"errors"

	"ugc-srv/internal/inbox"
	pkgErrors "ugc-srv/pkg/errors"
)

var (
	errInboxItemNotFound = pkgErrors.NewHTTPError(404, "Inbox item not found")
	errContentNotFound   = pkgErrors.NewHTTPError(404, "Content item not found")
	errInvalidStatus     = pkgErrors.NewHTTPError(400, "Invalid status")
	errInvalidTransition = pkgErrors.NewHTTPError(409, "Status transition not allowed")
	errStatusConflict    = pkgErrors.NewHTTPError(409, "Item was updated concurrently, retry")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inbox.ErrInboxItemNotFound):
		return errInboxItemNotFound
	case errors.Is(err, inbox.ErrContentNotFound):
		return errContentNotFound
	case errors.Is(err, inbox.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, inbox.ErrInvalidTransition):
		return errInvalidTransition
	case errors.Is(err, inbox.ErrStatusConflict):
		return errStatusConflict
	default:
		panic(err)
	}
}
