package model

import "time"

// ShopConnection links the service to a storefront. The access token is
// stored encrypted and never leaves the shop domain.
type ShopConnection struct {
	ID             string
	ShopDomain     string
	AccessTokenEnc string
	Scopes         string
	ConnectedBy    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
