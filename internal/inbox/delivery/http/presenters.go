package http

import (
	"time"

	"ugc-srv/internal/inbox"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
)

type promoteReq struct {
	ContentID string `json:"content_id" binding:"required"`
	Notes     string `json:"notes"`
}

func (req promoteReq) toInput() inbox.PromoteInput {
	return inbox.PromoteInput{
		ContentID: req.ContentID,
		Notes:     req.Notes,
	}
}

type updateStatusReq struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

type inboxContentResp struct {
	ID                string  `json:"id"`
	Platform          string  `json:"platform"`
	PlatformContentID string  `json:"platform_content_id"`
	AuthorHandle      string  `json:"author_handle"`
	Caption           string  `json:"caption"`
	MediaType         string  `json:"media_type"`
	MediaURL          string  `json:"media_url"`
	ThumbnailURL      string  `json:"thumbnail_url,omitempty"`
	Permalink         string  `json:"permalink,omitempty"`
	RightsStatus      string  `json:"rights_status"`
	QualityScore      float64 `json:"quality_score"`
}

type inboxItemResp struct {
	ID         string            `json:"id"`
	ContentID  string            `json:"content_id"`
	Status     string            `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	ReviewedBy string            `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Content    *inboxContentResp `json:"content,omitempty"`
}

func newInboxItemResp(item model.InboxItem) inboxItemResp {
	resp := inboxItemResp{
		ID:         item.ID,
		ContentID:  item.ContentID,
		Status:     item.Status,
		Notes:      item.Notes,
		ReviewedBy: item.ReviewedBy,
		ReviewedAt: item.ReviewedAt,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if item.Content != nil {
		resp.Content = &inboxContentResp{
			ID:                item.Content.ID,
			Platform:          item.Content.Platform,
			PlatformContentID: item.Content.PlatformContentID,
			AuthorHandle:      item.Content.AuthorHandle,
			Caption:           item.Content.Caption,
			MediaType:         item.Content.MediaType,
			MediaURL:          item.Content.MediaURL,
			ThumbnailURL:      item.Content.ThumbnailURL,
			Permalink:         item.Content.Permalink,
			RightsStatus:      item.Content.RightsStatus,
			QualityScore:      item.Content.QualityScore,
		}
	}
	return resp
}

type listInboxResp struct {
	Items     []inboxItemResp             `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListInboxResp(o inbox.ListInboxOutput) listInboxResp {
	resp := listInboxResp{
		Items:     []inboxItemResp{},
		Paginator: o.Paginator.ToResponse(),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, newInboxItemResp(item))
	}
	return resp
}
