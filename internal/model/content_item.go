package model

import "time"

// Platform constants
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformFacebook  = "facebook"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
)

// Media type constants
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Sentiment constants
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ValidPlatforms contains all supported platforms.
var ValidPlatforms = []string{
	PlatformInstagram,
	PlatformTikTok,
	PlatformFacebook,
	PlatformYouTube,
	PlatformTwitter,
}

// IsValidPlatform reports whether the platform is supported.
func IsValidPlatform(p string) bool {
	for _, v := range ValidPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

// IsValidMediaType reports whether the media type is supported.
func IsValidMediaType(m string) bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

// ContentItem is a piece of user generated content pulled from a social network.
type ContentItem struct {
	ID                string
	Platform          string
	PlatformContentID string

	AuthorID            string
	AuthorHandle        string
	AuthorFollowerCount int64
	AuthorVerified      bool

	Caption         string
	Hashtags        []string
	Location        string
	MediaType       string
	MediaURL        string
	ThumbnailURL    string
	Permalink       string
	DurationSeconds float64

	// Engagement counters, refreshed on demand
	Likes    int64
	Comments int64
	Shares   int64
	Views    int64

	// Classifier verdict. Classified is false when the classifier
	// could not be reached and defaults were stored instead.
	Category       string
	Sentiment      string
	SentimentScore float64
	QualityScore   float64
	BrandSafe      bool
	Tags           []string
	Classified     bool

	// RightsStatus mirrors the latest rights request decision.
	RightsStatus string

	PostedAt     *time.Time
	DiscoveredAt time.Time
	UpdatedAt    time.Time
}
