package http

import (
	"ugc-srv/pkg/response"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Ingest content items
// @Description Push a batch of content into the pool, skipping duplicates
// @Tags Content
// @Accept json
// @Produce json
// @Param body body ingestReq true "Batch of items"
// @Success 200 {object} ingestResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/ingest [post]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processIngestRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.Ingest: processIngestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Ingest(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.Ingest: usecase Ingest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIngestResp(o))
}

// @Summary Discover content
// @Description Sweep the configured networks for matching posts and ingest them
// @Tags Content
// @Accept json
// @Produce json
// @Param body body discoverReq true "Search terms"
// @Success 200 {object} ingestResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/discover [post]
func (h *handler) Discover(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDiscoverRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.Discover: processDiscoverRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Discover(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.Discover: usecase Discover failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIngestResp(o))
}

// @Summary Get content item
// @Description Return one content item by ID
// @Tags Content
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {object} contentItemResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/{content_id} [get]
func (h *handler) GetContent(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetContent(ctx, sc, c.Param("content_id"))
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.GetContent: usecase GetContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newContentItemResp(o))
}

// @Summary List content items
// @Description Paginate the content pool with filters
// @Tags Content
// @Accept json
// @Produce json
// @Param platform query string false "Platform filter"
// @Param category query string false "Category filter"
// @Param sentiment query string false "Sentiment filter"
// @Param media_type query string false "Media type filter"
// @Param rights_status query string false "Rights status filter"
// @Param brand_safe query bool false "Brand safety filter"
// @Param min_quality query number false "Minimum quality score"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20)"
// @Success 200 {object} listContentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content [get]
func (h *handler) ListContent(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.ListContent: processListContentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListContent(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.ListContent: usecase ListContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListContentResp(o))
}

// @Summary Refresh engagement
// @Description Pull current engagement counters from the source network
// @Tags Content
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {object} contentItemResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/content/{content_id}/engagement/refresh [post]
func (h *handler) RefreshEngagement(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.RefreshEngagement(ctx, sc, c.Param("content_id"))
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.RefreshEngagement: usecase RefreshEngagement failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newContentItemResp(o))
}
