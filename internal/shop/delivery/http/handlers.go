package http

import (
	"ugc-srv/pkg/response"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Connect a shop
// @Description Exchange a Shopify OAuth code and store the connection
// @Tags Shop
// @Accept json
// @Produce json
// @Param body body connectReq true "Shop domain and authorization code"
// @Success 200 {object} shopConnectionResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/shops/connect [post]
func (h *handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConnectRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "shop.delivery.http.Connect: processConnectRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Connect(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "shop.delivery.http.Connect: usecase Connect failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newShopConnectionResp(o))
}

// @Summary List connected shops
// @Description Return every connected shop, tokens excluded
// @Tags Shop
// @Accept json
// @Produce json
// @Success 200 {array} shopConnectionResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/shops [get]
func (h *handler) ListConnections(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	conns, err := h.uc.ListConnections(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "shop.delivery.http.ListConnections: usecase ListConnections failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	resp := []shopConnectionResp{}
	for _, conn := range conns {
		resp = append(resp, newShopConnectionResp(conn))
	}

	response.OK(c, resp)
}

// @Summary List shop products
// @Description Read active products from a connected shop
// @Tags Shop
// @Accept json
// @Produce json
// @Param shop_domain path string true "Shop domain"
// @Success 200 {array} productResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/shops/{shop_domain}/products [get]
func (h *handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	products, err := h.uc.ListProducts(ctx, sc, c.Param("shop_domain"))
	if err != nil {
		h.l.Errorf(ctx, "shop.delivery.http.ListProducts: usecase ListProducts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	resp := []productResp{}
	for _, p := range products {
		resp = append(resp, newProductResp(p))
	}

	response.OK(c, resp)
}
