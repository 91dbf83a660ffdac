package http

import (
	"ugc-srv/internal/model"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processConnectRequest(c *gin.Context) (connectReq, model.Scope, error) {
	var req connectReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
