package shopify

import "errors"

var (
	// ErrInvalidExchange is returned when the shop domain or code is empty.
	ErrInvalidExchange = errors.New("shopify: shop domain and code are required")

	// ErrExchangeRejected is returned when Shopify rejects the OAuth code.
	ErrExchangeRejected = errors.New("shopify: authorization code rejected")

	// ErrUnauthorized is returned when the stored access token is no longer valid.
	ErrUnauthorized = errors.New("shopify: access token unauthorized")
)
