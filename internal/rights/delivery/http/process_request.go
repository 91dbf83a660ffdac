package http

import (
	"ugc-srv/internal/model"
	"ugc-srv/internal/rights"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRequestRightsRequest(c *gin.Context) (rights.RequestInput, model.Scope, error) {
	var req requestRightsReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return rights.RequestInput{}, model.Scope{}, err
	}

	input := rights.RequestInput{
		ContentID: c.Param("content_id"),
		BrandID:   req.BrandID,
		Terms:     req.Terms,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

func (h *handler) processResolveRightsRequest(c *gin.Context) (rights.ResolveInput, model.Scope, error) {
	var req resolveRightsReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return rights.ResolveInput{}, model.Scope{}, err
	}

	input := rights.ResolveInput{
		ContentID: c.Param("content_id"),
		Decision:  req.Decision,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}
