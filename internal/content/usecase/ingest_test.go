package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ugc-srv/internal/content"
	"ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/openai"
	"ugc-srv/pkg/platform"
)

type fakePostgres struct {
	createFunc func(ctx context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error)
	getFunc    func(ctx context.Context, id string) (model.ContentItem, error)
	listFunc   func(ctx context.Context, opt repository.ListContentItemsOptions) ([]model.ContentItem, error)
	countFunc  func(ctx context.Context, opt repository.ListContentItemsOptions) (int64, error)
	updateFunc func(ctx context.Context, opt repository.UpdateEngagementOptions) (model.ContentItem, error)
}

func (f *fakePostgres) CreateContentItem(ctx context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
	return f.createFunc(ctx, opt)
}

func (f *fakePostgres) GetContentItemByID(ctx context.Context, id string) (model.ContentItem, error) {
	return f.getFunc(ctx, id)
}

func (f *fakePostgres) ListContentItems(ctx context.Context, opt repository.ListContentItemsOptions) ([]model.ContentItem, error) {
	return f.listFunc(ctx, opt)
}

func (f *fakePostgres) CountContentItems(ctx context.Context, opt repository.ListContentItemsOptions) (int64, error) {
	return f.countFunc(ctx, opt)
}

func (f *fakePostgres) UpdateContentEngagement(ctx context.Context, opt repository.UpdateEngagementOptions) (model.ContentItem, error) {
	return f.updateFunc(ctx, opt)
}

type fakeCache struct {
	getFunc    func(ctx context.Context, id string) (model.ContentItem, error)
	setFunc    func(ctx context.Context, item model.ContentItem, ttl time.Duration) error
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakeCache) GetContentItem(ctx context.Context, id string) (model.ContentItem, error) {
	if f.getFunc == nil {
		return model.ContentItem{}, repository.ErrCacheMiss
	}
	return f.getFunc(ctx, id)
}

func (f *fakeCache) SetContentItem(ctx context.Context, item model.ContentItem, ttl time.Duration) error {
	if f.setFunc == nil {
		return nil
	}
	return f.setFunc(ctx, item, ttl)
}

func (f *fakeCache) DeleteContentItem(ctx context.Context, id string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, id)
}

type fakePlatform struct {
	searchFunc     func(ctx context.Context, input platform.SearchInput) ([]platform.Post, error)
	engagementFunc func(ctx context.Context, p, platformContentID string) (platform.Engagement, error)
}

func (f *fakePlatform) Search(ctx context.Context, input platform.SearchInput) ([]platform.Post, error) {
	return f.searchFunc(ctx, input)
}

func (f *fakePlatform) GetEngagement(ctx context.Context, p, platformContentID string) (platform.Engagement, error) {
	return f.engagementFunc(ctx, p, platformContentID)
}

type fakeOpenAI struct {
	classifyFunc func(ctx context.Context, input openai.ClassifyInput) (openai.Classification, error)
	speakFunc    func(ctx context.Context, input openai.SpeechInput) (openai.SpeechResult, error)
	editFunc     func(ctx context.Context, input openai.EditInput) ([]byte, error)
	detectFunc   func(ctx context.Context, mediaURL string) ([]openai.DetectedObject, error)
}

func (f *fakeOpenAI) Classify(ctx context.Context, input openai.ClassifyInput) (openai.Classification, error) {
	return f.classifyFunc(ctx, input)
}

func (f *fakeOpenAI) Speak(ctx context.Context, input openai.SpeechInput) (openai.SpeechResult, error) {
	return f.speakFunc(ctx, input)
}

func (f *fakeOpenAI) EditImage(ctx context.Context, input openai.EditInput) ([]byte, error) {
	return f.editFunc(ctx, input)
}

func (f *fakeOpenAI) DetectObjects(ctx context.Context, mediaURL string) ([]openai.DetectedObject, error) {
	return f.detectFunc(ctx, mediaURL)
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error"})
}

func approvingClassifier() *fakeOpenAI {
	return &fakeOpenAI{
		classifyFunc: func(_ context.Context, _ openai.ClassifyInput) (openai.Classification, error) {
			return openai.Classification{
				Category:       "lifestyle",
				Sentiment:      model.SentimentPositive,
				SentimentScore: 0.8,
				QualityScore:   0.7,
				BrandSafe:      true,
				Tags:           []string{"outdoor"},
			}, nil
		},
	}
}

func validIngestItem(platformContentID string) content.IngestItem {
	return content.IngestItem{
		Platform:          model.PlatformInstagram,
		PlatformContentID: platformContentID,
		AuthorHandle:      "@creator",
		Caption:           "loving this product",
		MediaType:         model.MediaTypeImage,
		MediaURL:          "https://cdn.example.com/p1.jpg",
		Permalink:         "https://instagram.com/p/p1",
		Likes:             120,
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Role: "operator"}

	t.Run("empty batch is rejected", func(t *testing.T) {
		uc := New(&fakePostgres{}, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		_, err := uc.Ingest(ctx, sc, content.IngestInput{})
		require.ErrorIs(t, err, content.ErrEmptyBatch)
	})

	t.Run("invalid platform is rejected before any write", func(t *testing.T) {
		repo := &fakePostgres{
			createFunc: func(_ context.Context, _ repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
				t.Fatal("no write expected")
				return model.ContentItem{}, false, nil
			},
		}
		uc := New(repo, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		item := validIngestItem("p1")
		item.Platform = "myspace"

		_, err := uc.Ingest(ctx, sc, content.IngestInput{Items: []content.IngestItem{item}})
		require.ErrorIs(t, err, content.ErrInvalidPlatform)
	})

	t.Run("missing media url is rejected", func(t *testing.T) {
		uc := New(&fakePostgres{}, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		item := validIngestItem("p1")
		item.MediaURL = ""

		_, err := uc.Ingest(ctx, sc, content.IngestInput{Items: []content.IngestItem{item}})
		require.ErrorIs(t, err, content.ErrMissingMediaURL)
	})

	t.Run("duplicates are skipped, not errors", func(t *testing.T) {
		seen := map[string]bool{}
		repo := &fakePostgres{
			createFunc: func(_ context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
				key := opt.Platform + "/" + opt.PlatformContentID
				if seen[key] {
					return model.ContentItem{}, false, nil
				}
				seen[key] = true
				return model.ContentItem{ID: "id-" + opt.PlatformContentID, Platform: opt.Platform, PlatformContentID: opt.PlatformContentID}, true, nil
			},
		}
		uc := New(repo, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		out, err := uc.Ingest(ctx, sc, content.IngestInput{Items: []content.IngestItem{
			validIngestItem("p1"),
			validIngestItem("p2"),
			validIngestItem("p1"),
		}})
		require.NoError(t, err)
		require.Equal(t, 2, out.Created)
		require.Equal(t, 1, out.Skipped)
		require.Len(t, out.Items, 2)
	})

	t.Run("one failing row does not abort the batch", func(t *testing.T) {
		repo := &fakePostgres{
			createFunc: func(_ context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
				if opt.PlatformContentID == "p2" {
					return model.ContentItem{}, false, errors.New("constraint violation on this row only")
				}
				return model.ContentItem{ID: "id-" + opt.PlatformContentID, Platform: opt.Platform, PlatformContentID: opt.PlatformContentID}, true, nil
			},
		}
		uc := New(repo, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		out, err := uc.Ingest(ctx, sc, content.IngestInput{Items: []content.IngestItem{
			validIngestItem("p1"),
			validIngestItem("p2"),
			validIngestItem("p3"),
		}})
		require.NoError(t, err)
		require.Equal(t, 2, out.Created)
		require.Equal(t, 1, out.Failed)
		require.Equal(t, 0, out.Skipped)
		require.Len(t, out.Items, 2)
		require.Equal(t, "id-p1", out.Items[0].ID)
		require.Equal(t, "id-p3", out.Items[1].ID)
	})

	t.Run("classifier verdict is stored on the item", func(t *testing.T) {
		var stored repository.CreateContentItemOptions
		repo := &fakePostgres{
			createFunc: func(_ context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
				stored = opt
				return model.ContentItem{ID: "id-1"}, true, nil
			},
		}
		uc := New(repo, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		_, err := uc.Ingest(ctx, sc, content.IngestInput{Items: []content.IngestItem{validIngestItem("p1")}})
		require.NoError(t, err)
		require.True(t, stored.Classified)
		require.True(t, stored.BrandSafe)
		require.Equal(t, "lifestyle", stored.Category)
		require.Equal(t, model.SentimentPositive, stored.Sentiment)
	})

	t.Run("classifier outage falls back to neutral defaults", func(t *testing.T) {
		var stored repository.CreateContentItemOptions
		repo := &fakePostgres{
			createFunc: func(_ context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
				stored = opt
				return model.ContentItem{ID: "id-1"}, true, nil
			},
		}
		ai := &fakeOpenAI{
			classifyFunc: func(_ context.Context, _ openai.ClassifyInput) (openai.Classification, error) {
				return openai.Classification{}, errors.New("upstream timeout")
			},
		}
		uc := New(repo, &fakeCache{}, &fakePlatform{}, ai, testLogger())

		out, err := uc.Ingest(ctx, sc, content.IngestInput{Items: []content.IngestItem{validIngestItem("p1")}})
		require.NoError(t, err)
		require.Equal(t, 1, out.Created)
		require.False(t, stored.Classified)
		require.False(t, stored.BrandSafe)
		require.Equal(t, "other", stored.Category)
		require.Equal(t, model.SentimentNeutral, stored.Sentiment)
	})
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Role: "operator"}

	t.Run("requires at least one search term", func(t *testing.T) {
		uc := New(&fakePostgres{}, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		_, err := uc.Discover(ctx, sc, content.DiscoverInput{Platforms: []string{model.PlatformTikTok}})
		require.ErrorIs(t, err, content.ErrNoSearchTerms)
	})

	t.Run("rejects unsupported platform", func(t *testing.T) {
		uc := New(&fakePostgres{}, &fakeCache{}, &fakePlatform{}, approvingClassifier(), testLogger())

		_, err := uc.Discover(ctx, sc, content.DiscoverInput{
			Platforms: []string{"myspace"},
			Hashtags:  []string{"#brand"},
		})
		require.ErrorIs(t, err, content.ErrInvalidPlatform)
	})

	t.Run("one failing network does not sink the sweep", func(t *testing.T) {
		repo := &fakePostgres{
			createFunc: func(_ context.Context, opt repository.CreateContentItemOptions) (model.ContentItem, bool, error) {
				return model.ContentItem{ID: "id-" + opt.PlatformContentID}, true, nil
			},
		}
		provider := &fakePlatform{
			searchFunc: func(_ context.Context, input platform.SearchInput) ([]platform.Post, error) {
				if input.Platform == model.PlatformTikTok {
					return nil, errors.New("rate limited")
				}
				return []platform.Post{{
					ID:        "ig-1",
					MediaType: model.MediaTypeImage,
					MediaURL:  "https://cdn.example.com/ig-1.jpg",
					PostedAt:  time.Now(),
				}}, nil
			},
		}
		uc := New(repo, &fakeCache{}, provider, approvingClassifier(), testLogger())

		out, err := uc.Discover(ctx, sc, content.DiscoverInput{
			Platforms: []string{model.PlatformInstagram, model.PlatformTikTok},
			Hashtags:  []string{"#brand"},
		})
		require.NoError(t, err)
		require.Equal(t, 1, out.Created)
	})

	t.Run("empty sweep returns an empty result", func(t *testing.T) {
		provider := &fakePlatform{
			searchFunc: func(_ context.Context, _ platform.SearchInput) ([]platform.Post, error) {
				return nil, nil
			},
		}
		uc := New(&fakePostgres{}, &fakeCache{}, provider, approvingClassifier(), testLogger())

		out, err := uc.Discover(ctx, sc, content.DiscoverInput{Keywords: []string{"brand"}})
		require.NoError(t, err)
		require.Zero(t, out.Created)
		require.Zero(t, out.Skipped)
	})
}
