package http

import (
	"strconv"

	"ugc-srv/internal/content"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIngestRequest(c *gin.Context) (ingestReq, model.Scope, error) {
	var req ingestReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDiscoverRequest(c *gin.Context) (discoverReq, model.Scope, error) {
	var req discoverReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListContentRequest(c *gin.Context) (content.ListContentInput, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	minQuality, _ := strconv.ParseFloat(c.DefaultQuery("min_quality", "0"), 64)

	input := content.ListContentInput{
		Platform:     c.Query("platform"),
		Category:     c.Query("category"),
		Sentiment:    c.Query("sentiment"),
		MediaType:    c.Query("media_type"),
		RightsStatus: c.Query("rights_status"),
		MinQuality:   minQuality,
		PaginateQuery: paginator.PaginateQuery{
			Page:  page,
			Limit: limit,
		},
	}

	if raw := c.Query("brand_safe"); raw != "" {
		brandSafe, err := strconv.ParseBool(raw)
		if err == nil {
			input.BrandSafe = &brandSafe
		}
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}
