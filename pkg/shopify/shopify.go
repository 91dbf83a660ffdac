package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	pkghttp "ugc-srv/pkg/http"
)

type shopifyImpl struct {
	cfg        ShopifyConfig
	httpClient pkghttp.IClient
}

// ExchangeToken swaps an OAuth authorization code for a permanent
// Admin API access token.
func (s *shopifyImpl) ExchangeToken(ctx context.Context, shopDomain, code string) (Token, error) {
	if shopDomain == "" || code == "" {
		return Token{}, ErrInvalidExchange
	}

	endpoint := fmt.Sprintf("https://%s/admin/oauth/access_token", shopDomain)
	resp, status, err := s.httpClient.Post(ctx, endpoint, tokenRequest{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		Code:         code,
	}, nil)
	if err != nil {
		return Token{}, fmt.Errorf("shopify.ExchangeToken: %w", err)
	}
	if status != http.StatusOK {
		return Token{}, ErrExchangeRejected
	}

	var out tokenResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return Token{}, fmt.Errorf("shopify.ExchangeToken: decode response: %w", err)
	}
	if out.AccessToken == "" {
		return Token{}, ErrExchangeRejected
	}

	return Token{AccessToken: out.AccessToken, Scope: out.Scope}, nil
}

// ListProducts fetches active products from the shop.
func (s *shopifyImpl) ListProducts(ctx context.Context, shopDomain, accessToken string, limit int) ([]Product, error) {
	if limit <= 0 || limit > 250 {
		limit = 50
	}

	endpoint := fmt.Sprintf("https://%s/admin/api/%s/products.json?status=active&limit=%s",
		shopDomain, s.cfg.APIVersion, strconv.Itoa(limit))
	resp, status, err := s.httpClient.Get(ctx, endpoint, map[string]string{
		"X-Shopify-Access-Token": accessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("shopify.ListProducts: %w", err)
	}
	if status == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("shopify.ListProducts: status %d", status)
	}

	var out productsResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, fmt.Errorf("shopify.ListProducts: decode response: %w", err)
	}

	return out.Products, nil
}
