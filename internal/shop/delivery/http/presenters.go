package http

import (
	"time"

	"ugc-srv/internal/model"
	"ugc-srv/internal/shop"
	"ugc-srv/pkg/shopify"
)

type connectReq struct {
	ShopDomain string `json:"shop_domain" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

func (req connectReq) toInput() shop.ConnectInput {
	return shop.ConnectInput{
		ShopDomain: req.ShopDomain,
		Code:       req.Code,
	}
}

// shopConnectionResp never exposes the token, encrypted or not.
type shopConnectionResp struct {
	ID          string    `json:"id"`
	ShopDomain  string    `json:"shop_domain"`
	Scopes      string    `json:"scopes,omitempty"`
	ConnectedBy string    `json:"connected_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newShopConnectionResp(conn model.ShopConnection) shopConnectionResp {
	return shopConnectionResp{
		ID:          conn.ID,
		ShopDomain:  conn.ShopDomain,
		Scopes:      conn.Scopes,
		ConnectedBy: conn.ConnectedBy,
		CreatedAt:   conn.CreatedAt,
		UpdatedAt:   conn.UpdatedAt,
	}
}

type productVariantResp struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	SKU   string `json:"sku,omitempty"`
}

type productResp struct {
	ID       int64                `json:"id"`
	Title    string               `json:"title"`
	Handle   string               `json:"handle"`
	Status   string               `json:"status"`
	Variants []productVariantResp `json:"variants"`
	ImageURL string               `json:"image_url,omitempty"`
}

func newProductResp(p shopify.Product) productResp {
	resp := productResp{
		ID:       p.ID,
		Title:    p.Title,
		Handle:   p.Handle,
		Status:   p.Status,
		Variants: []productVariantResp{},
	}
	for _, v := range p.Variants {
		resp.Variants = append(resp.Variants, productVariantResp{
			ID:    v.ID,
			Title: v.Title,
			Price: v.Price,
			SKU:   v.SKU,
		})
	}
	if len(p.Images) > 0 {
		resp.ImageURL = p.Images[0].Src
	}
	return resp
}
