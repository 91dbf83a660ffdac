package model

import "time"

// Asset job status constants
const (
	AssetStatusProcessing = "processing"
	AssetStatusCompleted  = "completed"
	AssetStatusFailed     = "failed"
)

// Asset kind constants
const (
	AssetKindEdit      = "edit"
	AssetKindVoiceover = "voiceover"
	AssetKindHotspot   = "hotspot"
)

// IsValidAssetKind reports whether the kind is supported.
func IsValidAssetKind(k string) bool {
	return k == AssetKindEdit || k == AssetKindVoiceover || k == AssetKindHotspot
}

// Hotspot is a shoppable marker placed over a detected product,
// coordinates normalized to [0, 1].
type Hotspot struct {
	Label     string  `json:"label"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	ProductID int64   `json:"product_id,omitempty"`
	Price     string  `json:"price,omitempty"`
}

// EditOptions configures an image edit job.
type EditOptions struct {
	Filter     string  `json:"filter,omitempty"`
	Brightness float64 `json:"brightness,omitempty"`
	Contrast   float64 `json:"contrast,omitempty"`
	CropRatio  string  `json:"crop_ratio,omitempty"`
	LogoURL    string  `json:"logo_url,omitempty"`
}

// VoiceoverOptions configures a voiceover job.
type VoiceoverOptions struct {
	Script   string  `json:"script"`
	Voice    string  `json:"voice,omitempty"`
	Language string  `json:"language,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
}

// HotspotOptions configures a hotspot detection job.
type HotspotOptions struct {
	ShopDomain string `json:"shop_domain,omitempty"`
}

// DerivedAsset is an async transformation job and its result.
type DerivedAsset struct {
	ID        string
	ContentID string
	Kind      string
	Status    string

	// Options holds the kind-specific request payload as JSON.
	Options []byte

	// Result fields; populated depending on kind and status.
	// DurationSeconds is estimated from the script's narration pace.
	OutputURL       string
	AudioURL        string
	DurationSeconds float64
	Hotspots        []Hotspot
	ErrorMessage    string

	RequestedBy string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}
