package shop

import "errors"

var (
	ErrShopDomainRequired = errors.New("shop: shop domain is required")
	ErrCodeRequired       = errors.New("shop: authorization code is required")
	ErrExchangeRejected   = errors.New("shop: authorization code rejected")
	ErrShopNotConnected   = errors.New("shop: shop is not connected")
	ErrTokenRejected      = errors.New("shop: stored access token rejected")
)
