package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ugc-srv/internal/model"
	"ugc-srv/internal/shop"
	"ugc-srv/internal/shop/repository"
	"ugc-srv/pkg/encrypter"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/shopify"
)

// testKey is a 32 byte AES key for roundtripping real ciphertexts.
const testKey = "0123456789abcdef0123456789abcdef"

type fakePostgres struct {
	connections map[string]model.ShopConnection
}

func newFakePostgres() *fakePostgres {
	return &fakePostgres{connections: map[string]model.ShopConnection{}}
}

func (f *fakePostgres) UpsertShopConnection(_ context.Context, opts repository.UpsertShopConnectionOptions) (model.ShopConnection, error) {
	conn, ok := f.connections[opts.ShopDomain]
	if !ok {
		conn = model.ShopConnection{ID: "conn-" + opts.ShopDomain, ShopDomain: opts.ShopDomain, CreatedAt: time.Now()}
	}
	conn.AccessTokenEnc = opts.AccessTokenEnc
	conn.Scopes = opts.Scopes
	conn.ConnectedBy = opts.ConnectedBy
	conn.UpdatedAt = time.Now()
	f.connections[opts.ShopDomain] = conn
	return conn, nil
}

func (f *fakePostgres) GetShopConnectionByDomain(_ context.Context, shopDomain string) (model.ShopConnection, error) {
	conn, ok := f.connections[shopDomain]
	if !ok {
		return model.ShopConnection{}, repository.ErrNotFound
	}
	return conn, nil
}

func (f *fakePostgres) ListShopConnections(_ context.Context) ([]model.ShopConnection, error) {
	var out []model.ShopConnection
	for _, conn := range f.connections {
		out = append(out, conn)
	}
	return out, nil
}

type fakeShopify struct {
	exchangeFunc func(ctx context.Context, shopDomain, code string) (shopify.Token, error)
	productsFunc func(ctx context.Context, shopDomain, accessToken string, limit int) ([]shopify.Product, error)
}

func (f *fakeShopify) ExchangeToken(ctx context.Context, shopDomain, code string) (shopify.Token, error) {
	return f.exchangeFunc(ctx, shopDomain, code)
}

func (f *fakeShopify) ListProducts(ctx context.Context, shopDomain, accessToken string, limit int) ([]shopify.Product, error) {
	return f.productsFunc(ctx, shopDomain, accessToken, limit)
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error"})
}

func TestConnect(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "operator-1", Role: "operator"}
	enc := encrypter.New(testKey)

	t.Run("exchanges the code and stores the token encrypted", func(t *testing.T) {
		repo := newFakePostgres()
		sf := &fakeShopify{
			exchangeFunc: func(_ context.Context, shopDomain, code string) (shopify.Token, error) {
				require.Equal(t, "acme.myshopify.com", shopDomain)
				require.Equal(t, "oauth-code", code)
				return shopify.Token{AccessToken: "shpat_secret", Scope: "read_products"}, nil
			},
		}
		uc := New(repo, sf, enc, testLogger())

		conn, err := uc.Connect(ctx, sc, shop.ConnectInput{ShopDomain: "acme.myshopify.com", Code: "oauth-code"})
		require.NoError(t, err)
		require.Equal(t, "read_products", conn.Scopes)
		require.Equal(t, "operator-1", conn.ConnectedBy)

		// The raw token must never be stored.
		require.NotEqual(t, "shpat_secret", conn.AccessTokenEnc)
		decrypted, err := enc.Decrypt(conn.AccessTokenEnc)
		require.NoError(t, err)
		require.Equal(t, "shpat_secret", decrypted)
	})

	t.Run("reconnecting replaces the stored token", func(t *testing.T) {
		repo := newFakePostgres()
		token := "shpat_first"
		sf := &fakeShopify{
			exchangeFunc: func(_ context.Context, _, _ string) (shopify.Token, error) {
				return shopify.Token{AccessToken: token}, nil
			},
		}
		uc := New(repo, sf, enc, testLogger())

		first, err := uc.Connect(ctx, sc, shop.ConnectInput{ShopDomain: "acme.myshopify.com", Code: "code-1"})
		require.NoError(t, err)

		token = "shpat_second"
		second, err := uc.Connect(ctx, sc, shop.ConnectInput{ShopDomain: "acme.myshopify.com", Code: "code-2"})
		require.NoError(t, err)

		require.Equal(t, first.ID, second.ID)
		decrypted, err := enc.Decrypt(second.AccessTokenEnc)
		require.NoError(t, err)
		require.Equal(t, "shpat_second", decrypted)
	})

	t.Run("requires shop domain and code", func(t *testing.T) {
		uc := New(newFakePostgres(), &fakeShopify{}, enc, testLogger())

		_, err := uc.Connect(ctx, sc, shop.ConnectInput{Code: "oauth-code"})
		require.ErrorIs(t, err, shop.ErrShopDomainRequired)

		_, err = uc.Connect(ctx, sc, shop.ConnectInput{ShopDomain: "acme.myshopify.com"})
		require.ErrorIs(t, err, shop.ErrCodeRequired)
	})

	t.Run("rejected code maps to exchange rejected", func(t *testing.T) {
		sf := &fakeShopify{
			exchangeFunc: func(_ context.Context, _, _ string) (shopify.Token, error) {
				return shopify.Token{}, shopify.ErrExchangeRejected
			},
		}
		uc := New(newFakePostgres(), sf, enc, testLogger())

		_, err := uc.Connect(ctx, sc, shop.ConnectInput{ShopDomain: "acme.myshopify.com", Code: "expired"})
		require.ErrorIs(t, err, shop.ErrExchangeRejected)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "operator-1", Role: "operator"}
	enc := encrypter.New(testKey)

	connect := func(t *testing.T, repo *fakePostgres, token string) {
		t.Helper()
		tokenEnc, err := enc.Encrypt(token)
		require.NoError(t, err)
		_, err = repo.UpsertShopConnection(ctx, repository.UpsertShopConnectionOptions{
			ShopDomain:     "acme.myshopify.com",
			AccessTokenEnc: tokenEnc,
		})
		require.NoError(t, err)
	}

	t.Run("decrypts the token and reads products", func(t *testing.T) {
		repo := newFakePostgres()
		connect(t, repo, "shpat_secret")
		sf := &fakeShopify{
			productsFunc: func(_ context.Context, shopDomain, accessToken string, limit int) ([]shopify.Product, error) {
				require.Equal(t, "acme.myshopify.com", shopDomain)
				require.Equal(t, "shpat_secret", accessToken)
				require.Equal(t, productPageSize, limit)
				return []shopify.Product{{ID: 42, Title: "Cloud Sneaker"}}, nil
			},
		}
		uc := New(repo, sf, enc, testLogger())

		products, err := uc.ListProducts(ctx, sc, "acme.myshopify.com")
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.Equal(t, int64(42), products[0].ID)
	})

	t.Run("unconnected shop maps to not connected", func(t *testing.T) {
		uc := New(newFakePostgres(), &fakeShopify{}, enc, testLogger())

		_, err := uc.ListProducts(ctx, sc, "ghost.myshopify.com")
		require.ErrorIs(t, err, shop.ErrShopNotConnected)
	})

	t.Run("revoked token maps to token rejected", func(t *testing.T) {
		repo := newFakePostgres()
		connect(t, repo, "shpat_revoked")
		sf := &fakeShopify{
			productsFunc: func(_ context.Context, _, _ string, _ int) ([]shopify.Product, error) {
				return nil, shopify.ErrUnauthorized
			},
		}
		uc := New(repo, sf, enc, testLogger())

		_, err := uc.ListProducts(ctx, sc, "acme.myshopify.com")
		require.ErrorIs(t, err, shop.ErrTokenRejected)
	})
}
