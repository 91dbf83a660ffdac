package openai

import (
	"context"
	"fmt"
	"time"

	pkghttp "ugc-srv/pkg/http"
)

// IOpenAI defines the interface for the OpenAI collaborator: content
// classification, speech synthesis, image edits and object detection.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Classify(ctx context.Context, input ClassifyInput) (Classification, error)
	Speak(ctx context.Context, input SpeechInput) (SpeechResult, error)
	EditImage(ctx context.Context, input EditInput) ([]byte, error)
	DetectObjects(ctx context.Context, mediaURL string) ([]DetectedObject, error)
}

// NewOpenAI creates a new OpenAI client. Model defaults to DefaultModel if empty.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	return &openaiImpl{
		cfg: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
