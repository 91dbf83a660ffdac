package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	pkghttp "ugc-srv/pkg/http"
)

type platformImpl struct {
	cfg        PlatformConfig
	httpClient pkghttp.IClient
}

// Search queries the provider for recent posts on one network matching
// any of the given hashtags, keywords or mentions.
func (p *platformImpl) Search(ctx context.Context, input SearchInput) ([]Post, error) {
	if input.Platform == "" {
		return nil, fmt.Errorf("platform.Search: platform is required")
	}

	q := url.Values{}
	if len(input.Hashtags) > 0 {
		q.Set("hashtags", strings.Join(input.Hashtags, ","))
	}
	if len(input.Keywords) > 0 {
		q.Set("keywords", strings.Join(input.Keywords, ","))
	}
	if len(input.Mentions) > 0 {
		q.Set("mentions", strings.Join(input.Mentions, ","))
	}
	if !input.Since.IsZero() {
		q.Set("since", input.Since.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if input.Limit > 0 {
		q.Set("limit", strconv.Itoa(input.Limit))
	}

	endpoint := fmt.Sprintf("%s/v1/%s/search?%s", p.cfg.BaseURL, input.Platform, q.Encode())
	resp, status, err := p.httpClient.Get(ctx, endpoint, p.headers())
	if err != nil {
		return nil, fmt.Errorf("platform.Search: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("platform.Search: status %d", status)
	}

	var out searchResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, fmt.Errorf("platform.Search: decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("platform.Search: %s", out.Error)
	}

	return out.Posts, nil
}

// GetEngagement fetches the current counters for a single post.
func (p *platformImpl) GetEngagement(ctx context.Context, platform, platformContentID string) (Engagement, error) {
	endpoint := fmt.Sprintf("%s/v1/%s/posts/%s/engagement",
		p.cfg.BaseURL, platform, url.PathEscape(platformContentID))
	resp, status, err := p.httpClient.Get(ctx, endpoint, p.headers())
	if err != nil {
		return Engagement{}, fmt.Errorf("platform.GetEngagement: %w", err)
	}
	if status == http.StatusNotFound {
		return Engagement{}, ErrPostNotFound
	}
	if status != http.StatusOK {
		return Engagement{}, fmt.Errorf("platform.GetEngagement: status %d", status)
	}

	var out engagementResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return Engagement{}, fmt.Errorf("platform.GetEngagement: decode response: %w", err)
	}
	if out.Error != "" {
		return Engagement{}, fmt.Errorf("platform.GetEngagement: %s", out.Error)
	}

	return out.Engagement, nil
}

func (p *platformImpl) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + p.cfg.APIKey,
	}
}
