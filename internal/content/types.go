package content

import (
	"time"

	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
)

// IngestItem is one piece of content pushed into the pool.
type IngestItem struct {
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

	PostedAt *time.Time
}

// IngestInput carries a batch of items to ingest.
type IngestInput struct {
	Items []IngestItem
}

// IngestOutput reports what the batch did. Skipped counts items that
// already existed for their (platform, platform content id) pair; Failed
// counts items whose store attempt errored.
type IngestOutput struct {
	Created int
	Skipped int
	Failed  int
	Items   []model.ContentItem
}

// DiscoverInput configures a discovery sweep.
type DiscoverInput struct {
	Platforms []string
	Hashtags  []string
	Keywords  []string
	Mentions  []string
	Since     time.Time
	Limit     int
}

// ListContentInput filters the content pool.
type ListContentInput struct {
	Platform     string
	Category     string
	Sentiment    string
	MediaType    string
	RightsStatus string
	BrandSafe    *bool
	MinQuality   float64

	PaginateQuery paginator.PaginateQuery
}

// ListContentOutput is a page of content items.
type ListContentOutput struct {
	Items     []model.ContentItem
	Paginator paginator.Paginator
}
