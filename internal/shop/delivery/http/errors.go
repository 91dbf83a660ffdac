package http

import (
	"errors"

	"ugc-srv/internal/shop"
	pkgErrors "ugc-srv/pkg/errors"
)

var (
	errShopDomainRequired = pkgErrors.NewHTTPError(400, "Shop domain is required")
	errCodeRequired       = pkgErrors.NewHTTPError(400, "Authorization code is required")
	errExchangeRejected   = pkgErrors.NewHTTPError(400, "Authorization code rejected")
	errShopNotConnected   = pkgErrors.NewHTTPError(404, "Shop is not connected")
	errTokenRejected      = pkgErrors.NewHTTPError(502, "Shop rejected the stored credentials, reconnect the shop")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shop.ErrShopDomainRequired):
		return errShopDomainRequired
	case errors.Is(err, shop.ErrCodeRequired):
		return errCodeRequired
	case errors.Is(err, shop.ErrExchangeRejected):
		return errExchangeRejected
	case errors.Is(err, shop.ErrShopNotConnected):
		return errShopNotConnected
	case errors.Is(err, shop.ErrTokenRejected):
		return errTokenRejected
	default:
		panic(err)
	}
}
