package platform

import "time"

// PlatformConfig holds the configuration for the social listening client.
type PlatformConfig struct {
	BaseURL string
	APIKey  string
}

// SearchInput describes a discovery sweep across one network.
type SearchInput struct {
	Platform string
	Hashtags []string
	Keywords []string
	Mentions []string
	Since    time.Time
	Limit    int
}

// Post is a piece of content as returned by the provider.
type Post struct {
	ID              string     `json:"id"`
	AuthorID        string     `json:"author_id"`
	AuthorHandle    string     `json:"author_handle"`
	AuthorFollowers int64      `json:"author_followers"`
	AuthorVerified  bool       `json:"author_verified"`
	Caption         string     `json:"caption"`
	Hashtags        []string   `json:"hashtags"`
	Location        string     `json:"location"`
	MediaType       string     `json:"media_type"`
	MediaURL        string     `json:"media_url"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	Permalink       string     `json:"permalink"`
	DurationSeconds float64    `json:"duration_seconds"`
	PostedAt        time.Time  `json:"posted_at"`
	Engagement      Engagement `json:"engagement"`
}

// Engagement holds the raw counters for a post.
type Engagement struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
	Views    int64 `json:"views"`
}

type searchResponse struct {
	Posts []Post `json:"posts"`
	Error string `json:"error,omitempty"`
}

type engagementResponse struct {
	Engagement Engagement `json:"engagement"`
	Error      string     `json:"error,omitempty"`
}
