package http

import (
	"encoding/json"
	"time"

	"ugc-srv/internal/model"
)

type submitReq struct {
	Kind    string          `json:"kind" binding:"required"`
	Options json.RawMessage `json:"options"`
}

type hotspotResp struct {
	Label     string  `json:"label"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	ProductID int64   `json:"product_id,omitempty"`
	Price     string  `json:"price,omitempty"`
}

type derivedAssetResp struct {
	ID              string          `json:"id"`
	ContentID       string          `json:"content_id"`
	Kind            string          `json:"kind"`
	Status          string          `json:"status"`
	Options         json.RawMessage `json:"options,omitempty"`
	OutputURL       string          `json:"output_url,omitempty"`
	AudioURL        string          `json:"audio_url,omitempty"`
	DurationSeconds float64         `json:"duration_seconds,omitempty"`
	Hotspots        []hotspotResp   `json:"hotspots,omitempty"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	RequestedBy     string          `json:"requested_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

func newDerivedAssetResp(job model.DerivedAsset) derivedAssetResp {
	resp := derivedAssetResp{
		ID:              job.ID,
		ContentID:       job.ContentID,
		Kind:            job.Kind,
		Status:          job.Status,
		Options:         json.RawMessage(job.Options),
		OutputURL:       job.OutputURL,
		AudioURL:        job.AudioURL,
		DurationSeconds: job.DurationSeconds,
		ErrorMessage:    job.ErrorMessage,
		RequestedBy:     job.RequestedBy,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
		CompletedAt:     job.CompletedAt,
	}
	for _, hs := range job.Hotspots {
		resp.Hotspots = append(resp.Hotspots, hotspotResp{
			Label:     hs.Label,
			X:         hs.X,
			Y:         hs.Y,
			W:         hs.W,
			H:         hs.H,
			ProductID: hs.ProductID,
			Price:     hs.Price,
		})
	}
	return resp
}
