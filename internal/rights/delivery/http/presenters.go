package http

import (
	"encoding/json"
	"time"

	"ugc-srv/internal/model"
)

type requestRightsReq struct {
	BrandID string          `json:"brand_id" binding:"required"`
	Terms   json.RawMessage `json:"terms"`
}

type resolveRightsReq struct {
	Decision string `json:"decision" binding:"required"`
}

type rightsRequestResp struct {
	ID          string          `json:"id"`
	ContentID   string          `json:"content_id"`
	BrandID     string          `json:"brand_id"`
	Terms       json.RawMessage `json:"terms,omitempty"`
	Status      string          `json:"status"`
	RequestedBy string          `json:"requested_by"`
	ResolvedBy  string          `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newRightsRequestResp(req model.RightsRequest) rightsRequestResp {
	return rightsRequestResp{
		ID:          req.ID,
		ContentID:   req.ContentID,
		BrandID:     req.BrandID,
		Terms:       json.RawMessage(req.Terms),
		Status:      req.Status,
		RequestedBy: req.RequestedBy,
		ResolvedBy:  req.ResolvedBy,
		ResolvedAt:  req.ResolvedAt,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}
