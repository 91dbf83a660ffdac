package http

import (
	"ugc-srv/pkg/response"
	"ugc-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Promote content to inbox
// @Description Create an inbox item in status new for a content item
// @Tags Inbox
// @Accept json
// @Produce json
// @Param body body promoteReq true "Content to promote"
// @Success 200 {object} inboxItemResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/inbox [post]
func (h *handler) Promote(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPromoteRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.Promote: processPromoteRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Promote(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.Promote: usecase Promote failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newInboxItemResp(o))
}

// @Summary Update inbox item status
// @Description Move an inbox item along the review graph
// @Tags Inbox
// @Accept json
// @Produce json
// @Param inbox_id path string true "Inbox item ID"
// @Param body body updateStatusReq true "Target status"
// @Success 200 {object} inboxItemResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/inbox/{inbox_id}/status [patch]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processUpdateStatusRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.UpdateStatus: processUpdateStatusRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateStatus(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.UpdateStatus: usecase UpdateStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newInboxItemResp(o))
}

// @Summary Get inbox item
// @Description Return one inbox item with its source content
// @Tags Inbox
// @Accept json
// @Produce json
// @Param inbox_id path string true "Inbox item ID"
// @Success 200 {object} inboxItemResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/inbox/{inbox_id} [get]
func (h *handler) GetInboxItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetInboxItem(ctx, sc, c.Param("inbox_id"))
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.GetInboxItem: usecase GetInboxItem failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newInboxItemResp(o))
}

// @Summary List inbox
// @Description Paginate the review queue with a status filter
// @Tags Inbox
// @Accept json
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20)"
// @Success 200 {object} listInboxResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/inbox [get]
func (h *handler) ListInbox(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListInboxRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.ListInbox: processListInboxRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListInbox(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.ListInbox: usecase ListInbox failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListInboxResp(o))
}

// @Summary List inbox items by content
// @Description Return every inbox item spawned from one content item
// @Tags Inbox
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {array} inboxItemResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/{content_id}/inbox [get]
func (h *handler) ListInboxByContent(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	items, err := h.uc.ListInboxByContent(ctx, sc, c.Param("content_id"))
	if err != nil {
		h.l.Errorf(ctx, "inbox.delivery.http.ListInboxByContent: usecase ListInboxByContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	resp := []inboxItemResp{}
	for _, item := range items {
		resp = append(resp, newInboxItemResp(item))
	}

	response.OK(c, resp)
}
