package shopify

import (
	"context"
	"fmt"
	"time"

	pkghttp "ugc-srv/pkg/http"
)

// IShopify defines the interface for the Shopify Admin API client.
type IShopify interface {
	ExchangeToken(ctx context.Context, shopDomain, code string) (Token, error)
	ListProducts(ctx context.Context, shopDomain, accessToken string, limit int) ([]Product, error)
}

// NewShopify creates a new Shopify client.
func NewShopify(cfg ShopifyConfig) (IShopify, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("shopify: client credentials are required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	return &shopifyImpl{
		cfg: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
