package repository

// UpsertShopConnectionOptions carries the write parameters for a store
// connection. Reconnecting an already connected shop replaces its token.
type UpsertShopConnectionOptions struct {
	ShopDomain     string
	AccessTokenEnc string
	Scopes         string
	ConnectedBy    string
}
