package usecase

import (
	"context"
	"errors"

	"ugc-srv/internal/model"
	"ugc-srv/internal/shop"
	"ugc-srv/internal/shop/repository"
	"ugc-srv/pkg/shopify"
)

const productPageSize = 50

// Connect exchanges the OAuth code and stores the access token encrypted.
// Reconnecting a shop replaces the stored token.
func (uc *implUseCase) Connect(ctx context.Context, sc model.Scope, input shop.ConnectInput) (model.ShopConnection, error) {
	if input.ShopDomain == "" {
		return model.ShopConnection{}, shop.ErrShopDomainRequired
	}
	if input.Code == "" {
		return model.ShopConnection{}, shop.ErrCodeRequired
	}

	token, err := uc.shopify.ExchangeToken(ctx, input.ShopDomain, input.Code)
	if err != nil {
		if errors.Is(err, shopify.ErrExchangeRejected) || errors.Is(err, shopify.ErrInvalidExchange) {
			return model.ShopConnection{}, shop.ErrExchangeRejected
		}
		return model.ShopConnection{}, err
	}

	tokenEnc, err := uc.encrypter.Encrypt(token.AccessToken)
	if err != nil {
		return model.ShopConnection{}, err
	}

	conn, err := uc.repo.UpsertShopConnection(ctx, repository.UpsertShopConnectionOptions{
		ShopDomain:     input.ShopDomain,
		AccessTokenEnc: tokenEnc,
		Scopes:         token.Scope,
		ConnectedBy:    sc.UserID,
	})
	if err != nil {
		return model.ShopConnection{}, err
	}

	uc.l.Infof(ctx, "shop.usecase.Connect: connected shop %s by %s", conn.ShopDomain, sc.UserID)

	return conn, nil
}

// ListConnections returns every connected shop.
func (uc *implUseCase) ListConnections(ctx context.Context, sc model.Scope) ([]model.ShopConnection, error) {
	return uc.repo.ListShopConnections(ctx)
}

// ListProducts reads active products from the connected shop.
func (uc *implUseCase) ListProducts(ctx context.Context, sc model.Scope, shopDomain string) ([]shopify.Product, error) {
	if shopDomain == "" {
		return nil, shop.ErrShopDomainRequired
	}

	conn, err := uc.repo.GetShopConnectionByDomain(ctx, shopDomain)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, shop.ErrShopNotConnected
		}
		return nil, err
	}

	token, err := uc.encrypter.Decrypt(conn.AccessTokenEnc)
	if err != nil {
		return nil, err
	}

	products, err := uc.shopify.ListProducts(ctx, shopDomain, token, productPageSize)
	if err != nil {
		if errors.Is(err, shopify.ErrUnauthorized) {
			return nil, shop.ErrTokenRejected
		}
		return nil, err
	}

	return products, nil
}
