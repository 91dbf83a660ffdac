package shop

// ConnectInput carries the OAuth callback parameters for a store.
type ConnectInput struct {
	ShopDomain string
	Code       string
}
