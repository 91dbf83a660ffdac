package repository

import "ugc-srv/internal/model"

// CreateDerivedAssetOptions carries the parameters for a new job row,
// inserted in status processing.
type CreateDerivedAssetOptions struct {
	ContentID   string
	Kind        string
	Options     []byte
	RequestedBy string
}

// MarkCompletedOptions carries the kind-specific result of a finished job.
type MarkCompletedOptions struct {
	ID              string
	OutputURL       string
	AudioURL        string
	DurationSeconds float64
	Hotspots        []model.Hotspot
}
