package repository

import "time"

type CreateContentItemOptions struct {
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

	Likes    int64
	Comments int64
	Shares   int64
	Views    int64

	Category       string
	Sentiment      string
	SentimentScore float64
	QualityScore   float64
	BrandSafe      bool
	Tags           []string
	Classified     bool

	PostedAt *time.Time
}

type ListContentItemsOptions struct {
	Platform     string
	Category     string
	Sentiment    string
	MediaType    string
	RightsStatus string
	BrandSafe    *bool
	MinQuality   float64
	Limit        int
	Offset       int
}

type UpdateEngagementOptions struct {
	ID       string
	Likes    int64
	Comments int64
	Shares   int64
	Views    int64
}
