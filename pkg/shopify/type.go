package shopify

// ShopifyConfig holds the app credentials for OAuth exchanges.
type ShopifyConfig struct {
	ClientID     string
	ClientSecret string
	APIVersion   string
}

// DefaultAPIVersion is the Admin API version requests are pinned to.
const DefaultAPIVersion = "2025-07"

// Token is the result of an OAuth code exchange.
type Token struct {
	AccessToken string
	Scope       string
}

// Product is a storefront product as returned by the Admin API.
type Product struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Handle   string           `json:"handle"`
	Status   string           `json:"status"`
	Variants []ProductVariant `json:"variants"`
	Images   []ProductImage   `json:"images"`
}

// ProductVariant carries price information for a product.
type ProductVariant struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	SKU   string `json:"sku"`
}

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}
