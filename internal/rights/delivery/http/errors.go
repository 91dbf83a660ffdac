package http

import (
	"errors"

	"ugc-srv/internal/rights"
	pkgErrors "ugc-srv/pkg/errors"
)

var (
	errContentNotFound  = pkgErrors.NewHTTPError(404, "Content item not found")
	errAlreadyApproved  = pkgErrors.NewHTTPError(409, "Rights already approved for this content")
	errRequestPending   = pkgErrors.NewHTTPError(409, "A rights request is already pending")
	errNoPendingRequest = pkgErrors.NewHTTPError(404, "No pending rights request")
	errInvalidDecision  = pkgErrors.NewHTTPError(400, "Decision must be approved or declined")
	errBrandRequired    = pkgErrors.NewHTTPError(400, "Brand ID is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, rights.ErrContentNotFound):
		return errContentNotFound
	case errors.Is(err, rights.ErrAlreadyApproved):
		return errAlreadyApproved
	case errors.Is(err, rights.ErrRequestPending):
		return errRequestPending
	case errors.Is(err, rights.ErrNoPendingRequest):
		return errNoPendingRequest
	case errors.Is(err, rights.ErrInvalidDecision):
		return errInvalidDecision
	case errors.Is(err, rights.ErrBrandRequired):
		return errBrandRequired
	default:
		panic(err)
	}
}
