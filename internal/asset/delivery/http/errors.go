package http

import (
	"errors"

	"ugc-srv/internal/asset"
	pkgErrors "ugc-srv/pkg/errors"
)

var (
	errContentNotFound = pkgErrors.NewHTTPError(404, "Content item not found")
	errJobNotFound     = pkgErrors.NewHTTPError(404, "Job not found")
	errInvalidKind     = pkgErrors.NewHTTPError(400, "Kind must be edit, voiceover or hotspot")
	errInvalidOptions  = pkgErrors.NewHTTPError(400, "Invalid options payload")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, asset.ErrContentNotFound):
		return errContentNotFound
	case errors.Is(err, asset.ErrJobNotFound):
		return errJobNotFound
	case errors.Is(err, asset.ErrInvalidKind):
		return errInvalidKind
	case errors.Is(err, asset.ErrInvalidOptions):
		return errInvalidOptions
	default:
		panic(err)
	}
}
