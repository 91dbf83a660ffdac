package http

import (
	"ugc-srv/pkg/response"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Request usage rights
// @Description Open a usage rights request for a content item on behalf of a brand
// @Tags Rights
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Param body body requestRightsReq true "Brand and terms"
// @Success 200 {object} rightsRequestResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/content/{content_id}/rights/request [post]
func (h *handler) Request(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processRequestRightsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "rights.delivery.http.Request: processRequestRightsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Request(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "rights.delivery.http.Request: usecase Request failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRightsRequestResp(o))
}

// @Summary Resolve a rights request
// @Description Record the creator's answer to the pending rights request
// @Tags Rights
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Param body body resolveRightsReq true "Decision"
// @Success 200 {object} rightsRequestResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/content/{content_id}/rights/resolve [post]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processResolveRightsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "rights.delivery.http.Resolve: processResolveRightsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Resolve(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "rights.delivery.http.Resolve: usecase Resolve failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRightsRequestResp(o))
}

// @Summary List rights requests
// @Description Return the rights request history for a content item
// @Tags Rights
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {array} rightsRequestResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/{content_id}/rights [get]
func (h *handler) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	reqs, err := h.uc.ListRequests(ctx, sc, c.Param("content_id"))
	if err != nil {
		h.l.Errorf(ctx, "rights.delivery.http.ListRequests: usecase ListRequests failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	resp := []rightsRequestResp{}
	for _, req := range reqs {
		resp = append(resp, newRightsRequestResp(req))
	}

	response.OK(c, resp)
}
