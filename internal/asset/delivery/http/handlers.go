package http

import (
	"ugc-srv/pkg/response"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a derived asset job
// @Description Queue an edit, voiceover or hotspot job for a content item
// @Tags Assets
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Param body body submitReq true "Job kind and options"
// @Success 200 {object} derivedAssetResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/content/{content_id}/assets [post]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processSubmitRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "asset.delivery.http.Submit: processSubmitRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Submit(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "asset.delivery.http.Submit: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDerivedAssetResp(o))
}

// @Summary Get a job
// @Description Poll one derived asset job; completed jobs carry download URLs
// @Tags Assets
// @Accept json
// @Produce json
// @Param asset_id path string true "Job ID"
// @Success 200 {object} derivedAssetResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/assets/{asset_id} [get]
func (h *handler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetJob(ctx, sc, c.Param("asset_id"))
	if err != nil {
		h.l.Errorf(ctx, "asset.delivery.http.GetJob: usecase GetJob failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDerivedAssetResp(o))
}

// @Summary List jobs by content
// @Description Return every derived asset job for a content item
// @Tags Assets
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {array} derivedAssetResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/{content_id}/assets [get]
func (h *handler) ListJobsByContent(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	jobs, err := h.uc.ListJobsByContent(ctx, sc, c.Param("content_id"))
	if err != nil {
		h.l.Errorf(ctx, "asset.delivery.http.ListJobsByContent: usecase ListJobsByContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	resp := []derivedAssetResp{}
	for _, job := range jobs {
		resp = append(resp, newDerivedAssetResp(job))
	}

	response.OK(c, resp)
}
