package platform

import (
	"context"
	"fmt"
	"time"

	pkghttp "ugc-srv/pkg/http"
)

// IPlatform defines the interface for the social listening provider that
// backs content discovery across the supported networks.
type IPlatform interface {
	Search(ctx context.Context, input SearchInput) ([]Post, error)
	GetEngagement(ctx context.Context, platform, platformContentID string) (Engagement, error)
}

// NewPlatform creates a new social listening client.
func NewPlatform(cfg PlatformConfig) (IPlatform, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("platform: base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("platform: API key is required")
	}
	return &platformImpl{
		cfg: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
