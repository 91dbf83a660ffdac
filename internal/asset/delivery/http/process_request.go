package http

import (
	"ugc-srv/internal/asset"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitRequest(c *gin.Context) (asset.SubmitInput, model.Scope, error) {
	var req submitReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return asset.SubmitInput{}, model.Scope{}, err
	}

	input := asset.SubmitInput{
		ContentID: c.Param("content_id"),
		Kind:      req.Kind,
		Options:   req.Options,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}
