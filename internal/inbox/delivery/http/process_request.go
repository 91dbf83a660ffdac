package http

import (
	"strconv"

	"ugc-srv/internal/inbox"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPromoteRequest(c *gin.Context) (promoteReq, model.Scope, error) {
	var req promoteReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUpdateStatusRequest(c *gin.Context) (inbox.UpdateStatusInput, model.Scope, error) {
	var req updateStatusReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return inbox.UpdateStatusInput{}, model.Scope{}, err
	}

	input := inbox.UpdateStatusInput{
		ID:     c.Param("inbox_id"),
		Status: req.Status,
		Notes:  req.Notes,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

func (h *handler) processListInboxRequest(c *gin.Context) (inbox.ListInboxInput, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	input := inbox.ListInboxInput{
		Status: c.Query("status"),
		PaginateQuery: paginator.PaginateQuery{
			Page:  page,
			Limit: limit,
		},
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}
