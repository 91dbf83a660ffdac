package usecase

import (
	"ugc-srv/internal/content"
	"ugc-srv/pkg/platform"
)

func platformSearchInput(p string, input content.DiscoverInput) platform.SearchInput {
	return platform.SearchInput{
		Platform: p,
		Hashtags: input.Hashtags,
		Keywords: input.Keywords,
		Mentions: input.Mentions,
		Since:    input.Since,
		Limit:    input.Limit,
	}
}

func toIngestItem(p string, post platform.Post) content.IngestItem {
	item := content.IngestItem{
		Platform:            p,
		PlatformContentID:   post.ID,
		AuthorID:            post.AuthorID,
		AuthorHandle:        post.AuthorHandle,
		AuthorFollowerCount: post.AuthorFollowers,
		AuthorVerified:      post.AuthorVerified,
		Caption:             post.Caption,
		Hashtags:            post.Hashtags,
		Location:            post.Location,
		MediaType:           post.MediaType,
		MediaURL:            post.MediaURL,
		ThumbnailURL:        post.ThumbnailURL,
		Permalink:           post.Permalink,
		DurationSeconds:     post.DurationSeconds,
		Likes:               post.Engagement.Likes,
		Comments:            post.Engagement.Comments,
		Shares:              post.Engagement.Shares,
		Views:               post.Engagement.Views,
	}
	if !post.PostedAt.IsZero() {
		postedAt := post.PostedAt
		item.PostedAt = &postedAt
	}
	return item
}
