package http

import (
	"time"

	"ugc-srv/internal/content"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/paginator"
)

type ingestItemReq struct {
	Platform            string     `json:"platform" binding:"required"`
	PlatformContentID   string     `json:"platform_content_id" binding:"required"`
	AuthorID            string     `json:"author_id"`
	AuthorHandle        string     `json:"author_handle"`
	AuthorFollowerCount int64      `json:"author_follower_count"`
	AuthorVerified      bool       `json:"author_verified"`
	Caption             string     `json:"caption"`
	Hashtags            []string   `json:"hashtags"`
	Location            string     `json:"location"`
	MediaType           string     `json:"media_type" binding:"required"`
	MediaURL            string     `json:"media_url" binding:"required"`
	ThumbnailURL        string     `json:"thumbnail_url"`
	Permalink           string     `json:"permalink"`
	DurationSeconds     float64    `json:"duration_seconds"`
	Likes               int64      `json:"likes"`
	Comments            int64      `json:"comments"`
	Shares              int64      `json:"shares"`
	Views               int64      `json:"views"`
	PostedAt            *time.Time `json:"posted_at"`
}

type ingestReq struct {
	Items []ingestItemReq `json:"items" binding:"required"`
}

func (req ingestReq) toInput() content.IngestInput {
	items := make([]content.IngestItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = content.IngestItem{
			Platform:            it.Platform,
			PlatformContentID:   it.PlatformContentID,
			AuthorID:            it.AuthorID,
			AuthorHandle:        it.AuthorHandle,
			AuthorFollowerCount: it.AuthorFollowerCount,
			AuthorVerified:      it.AuthorVerified,
			Caption:             it.Caption,
			Hashtags:            it.Hashtags,
			Location:            it.Location,
			MediaType:           it.MediaType,
			MediaURL:            it.MediaURL,
			ThumbnailURL:        it.ThumbnailURL,
			Permalink:           it.Permalink,
			DurationSeconds:     it.DurationSeconds,
			Likes:               it.Likes,
			Comments:            it.Comments,
			Shares:              it.Shares,
			Views:               it.Views,
			PostedAt:            it.PostedAt,
		}
	}
	return content.IngestInput{Items: items}
}

type discoverReq struct {
	Platforms []string  `json:"platforms"`
	Hashtags  []string  `json:"hashtags"`
	Keywords  []string  `json:"keywords"`
	Mentions  []string  `json:"mentions"`
	Since     time.Time `json:"since"`
	Limit     int       `json:"limit"`
}

func (req discoverReq) toInput() content.DiscoverInput {
	return content.DiscoverInput{
		Platforms: req.Platforms,
		Hashtags:  req.Hashtags,
		Keywords:  req.Keywords,
		Mentions:  req.Mentions,
		Since:     req.Since,
		Limit:     req.Limit,
	}
}

type contentItemResp struct {
	ID                  string     `json:"id"`
	Platform            string     `json:"platform"`
	PlatformContentID   string     `json:"platform_content_id"`
	AuthorID            string     `json:"author_id"`
	AuthorHandle        string     `json:"author_handle"`
	AuthorFollowerCount int64      `json:"author_follower_count"`
	AuthorVerified      bool       `json:"author_verified"`
	Caption             string     `json:"caption"`
	Hashtags            []string   `json:"hashtags,omitempty"`
	Location            string     `json:"location,omitempty"`
	MediaType           string     `json:"media_type"`
	MediaURL            string     `json:"media_url"`
	ThumbnailURL        string     `json:"thumbnail_url,omitempty"`
	Permalink           string     `json:"permalink,omitempty"`
	DurationSeconds     float64    `json:"duration_seconds,omitempty"`
	Likes               int64      `json:"likes"`
	Comments            int64      `json:"comments"`
	Shares              int64      `json:"shares"`
	Views               int64      `json:"views"`
	Category            string     `json:"category"`
	Sentiment           string     `json:"sentiment"`
	SentimentScore      float64    `json:"sentiment_score"`
	QualityScore        float64    `json:"quality_score"`
	BrandSafe           bool       `json:"brand_safe"`
	Tags                []string   `json:"tags,omitempty"`
	Classified          bool       `json:"classified"`
	RightsStatus        string     `json:"rights_status"`
	PostedAt            *time.Time `json:"posted_at,omitempty"`
	DiscoveredAt        time.Time  `json:"discovered_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func newContentItemResp(item model.ContentItem) contentItemResp {
	return contentItemResp{
		ID:                  item.ID,
		Platform:            item.Platform,
		PlatformContentID:   item.PlatformContentID,
		AuthorID:            item.AuthorID,
		AuthorHandle:        item.AuthorHandle,
		AuthorFollowerCount: item.AuthorFollowerCount,
		AuthorVerified:      item.AuthorVerified,
		Caption:             item.Caption,
		Hashtags:            item.Hashtags,
		Location:            item.Location,
		MediaType:           item.MediaType,
		MediaURL:            item.MediaURL,
		ThumbnailURL:        item.ThumbnailURL,
		Permalink:           item.Permalink,
		DurationSeconds:     item.DurationSeconds,
		Likes:               item.Likes,
		Comments:            item.Comments,
		Shares:              item.Shares,
		Views:               item.Views,
		Category:            item.Category,
		Sentiment:           item.Sentiment,
		SentimentScore:      item.SentimentScore,
		QualityScore:        item.QualityScore,
		BrandSafe:           item.BrandSafe,
		Tags:                item.Tags,
		Classified:          item.Classified,
		RightsStatus:        item.RightsStatus,
		PostedAt:            item.PostedAt,
		DiscoveredAt:        item.DiscoveredAt,
		UpdatedAt:           item.UpdatedAt,
	}
}

type ingestResp struct {
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Failed  int               `json:"failed"`
	Items   []contentItemResp `json:"items"`
}

func (h *handler) newIngestResp(o content.IngestOutput) ingestResp {
	resp := ingestResp{
		Created: o.Created,
		Skipped: o.Skipped,
		Failed:  o.Failed,
		Items:   []contentItemResp{},
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, newContentItemResp(item))
	}
	return resp
}

type listContentResp struct {
	Items     []contentItemResp           `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListContentResp(o content.ListContentOutput) listContentResp {
	resp := listContentResp{
		Items:     []contentItemResp{},
		Paginator: o.Paginator.ToResponse(),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, newContentItemResp(item))
	}
	return resp
}
