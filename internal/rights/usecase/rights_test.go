package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	contentRepo "ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
	"ugc-srv/internal/rights"
	"ugc-srv/internal/rights/repository"
	"ugc-srv/pkg/log"
)

type fakePostgres struct {
	requestFunc func(ctx context.Context, opt repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error)
	resolveFunc func(ctx context.Context, opt repository.ResolveRightsOptions) (model.RightsRequest, repository.ContentRef, error)
	listFunc    func(ctx context.Context, contentID string) ([]model.RightsRequest, error)
}

func (f *fakePostgres) RequestRights(ctx context.Context, opt repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
	return f.requestFunc(ctx, opt)
}

func (f *fakePostgres) ResolveRights(ctx context.Context, opt repository.ResolveRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
	return f.resolveFunc(ctx, opt)
}

func (f *fakePostgres) ListRightsRequests(ctx context.Context, contentID string) ([]model.RightsRequest, error) {
	return f.listFunc(ctx, contentID)
}

type fakeCache struct {
	deleted []string
	fail    bool
}

func (f *fakeCache) GetContentItem(_ context.Context, _ string) (model.ContentItem, error) {
	return model.ContentItem{}, contentRepo.ErrCacheMiss
}

func (f *fakeCache) SetContentItem(_ context.Context, _ model.ContentItem, _ time.Duration) error {
	return nil
}

func (f *fakeCache) DeleteContentItem(_ context.Context, id string) error {
	if f.fail {
		return errors.New("redis gone")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePublisher struct {
	events []model.RightsEvent
	fail   bool
}

func (f *fakePublisher) PublishRightsEvent(_ context.Context, event model.RightsEvent) error {
	if f.fail {
		return errors.New("broker unavailable")
	}
	f.events = append(f.events, event)
	return nil
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error"})
}

func TestRequest(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "operator-1", Role: "operator"}

	t.Run("opens a pending request and publishes the event", func(t *testing.T) {
		repo := &fakePostgres{
			requestFunc: func(_ context.Context, opt repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				require.Equal(t, "content-1", opt.ContentID)
				require.Equal(t, "brand-1", opt.BrandID)
				require.Equal(t, "operator-1", opt.RequestedBy)
				return model.RightsRequest{
						ID:        "req-1",
						ContentID: opt.ContentID,
						BrandID:   opt.BrandID,
						Status:    model.RightsStatusPending,
					}, repository.ContentRef{
						AuthorHandle: "@creator",
						Platform:     model.PlatformInstagram,
						Permalink:    "https://instagram.com/p/p1",
					}, nil
			},
		}
		cache := &fakeCache{}
		publisher := &fakePublisher{}
		uc := New(repo, cache, publisher, testLogger())

		req, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "content-1", BrandID: "brand-1"})
		require.NoError(t, err)
		require.Equal(t, model.RightsStatusPending, req.Status)

		require.Equal(t, []string{"content-1"}, cache.deleted)
		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		require.Equal(t, model.RightsEventRequested, event.Type)
		require.Equal(t, "req-1", event.RequestID)
		require.Equal(t, "@creator", event.CreatorHandle)
		require.Equal(t, "https://instagram.com/p/p1", event.Permalink)
	})

	t.Run("requires a brand", func(t *testing.T) {
		uc := New(&fakePostgres{}, &fakeCache{}, &fakePublisher{}, testLogger())

		_, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "content-1"})
		require.ErrorIs(t, err, rights.ErrBrandRequired)
	})

	t.Run("a second request while one is pending conflicts", func(t *testing.T) {
		repo := &fakePostgres{
			requestFunc: func(_ context.Context, _ repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				return model.RightsRequest{}, repository.ContentRef{}, repository.ErrRequestPending
			},
		}
		publisher := &fakePublisher{}
		uc := New(repo, &fakeCache{}, publisher, testLogger())

		_, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "content-1", BrandID: "brand-1"})
		require.ErrorIs(t, err, rights.ErrRequestPending)
		require.Empty(t, publisher.events)
	})

	t.Run("approved content cannot be requested again", func(t *testing.T) {
		repo := &fakePostgres{
			requestFunc: func(_ context.Context, _ repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				return model.RightsRequest{}, repository.ContentRef{}, repository.ErrAlreadyApproved
			},
		}
		uc := New(repo, &fakeCache{}, &fakePublisher{}, testLogger())

		_, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "content-1", BrandID: "brand-1"})
		require.ErrorIs(t, err, rights.ErrAlreadyApproved)
	})

	t.Run("unknown content maps to not found", func(t *testing.T) {
		repo := &fakePostgres{
			requestFunc: func(_ context.Context, _ repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				return model.RightsRequest{}, repository.ContentRef{}, repository.ErrContentMissing
			},
		}
		uc := New(repo, &fakeCache{}, &fakePublisher{}, testLogger())

		_, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "ghost", BrandID: "brand-1"})
		require.ErrorIs(t, err, rights.ErrContentNotFound)
	})

	t.Run("publish failure never fails the request", func(t *testing.T) {
		repo := &fakePostgres{
			requestFunc: func(_ context.Context, opt repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				return model.RightsRequest{ID: "req-1", ContentID: opt.ContentID, Status: model.RightsStatusPending}, repository.ContentRef{}, nil
			},
		}
		uc := New(repo, &fakeCache{}, &fakePublisher{fail: true}, testLogger())

		req, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "content-1", BrandID: "brand-1"})
		require.NoError(t, err)
		require.Equal(t, "req-1", req.ID)
	})

	t.Run("cache failure never fails the request", func(t *testing.T) {
		repo := &fakePostgres{
			requestFunc: func(_ context.Context, opt repository.RequestRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				return model.RightsRequest{ID: "req-1", ContentID: opt.ContentID, Status: model.RightsStatusPending}, repository.ContentRef{}, nil
			},
		}
		publisher := &fakePublisher{}
		uc := New(repo, &fakeCache{fail: true}, publisher, testLogger())

		_, err := uc.Request(ctx, sc, rights.RequestInput{ContentID: "content-1", BrandID: "brand-1"})
		require.NoError(t, err)
		require.Len(t, publisher.events, 1)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "operator-1", Role: "operator"}

	t.Run("declines the pending request and publishes the mirror", func(t *testing.T) {
		repo := &fakePostgres{
			resolveFunc: func(_ context.Context, opt repository.ResolveRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				require.Equal(t, model.RightsStatusDeclined, opt.Decision)
				require.Equal(t, "operator-1", opt.ResolvedBy)
				return model.RightsRequest{
					ID:        "req-1",
					ContentID: opt.ContentID,
					BrandID:   "brand-1",
					Status:    model.RightsStatusDeclined,
				}, repository.ContentRef{AuthorHandle: "@creator"}, nil
			},
		}
		cache := &fakeCache{}
		publisher := &fakePublisher{}
		uc := New(repo, cache, publisher, testLogger())

		req, err := uc.Resolve(ctx, sc, rights.ResolveInput{ContentID: "content-1", Decision: model.RightsStatusDeclined})
		require.NoError(t, err)
		require.Equal(t, model.RightsStatusDeclined, req.Status)

		require.Equal(t, []string{"content-1"}, cache.deleted)
		require.Len(t, publisher.events, 1)
		require.Equal(t, model.RightsEventResolved, publisher.events[0].Type)
		require.Equal(t, model.RightsStatusDeclined, publisher.events[0].Status)
	})

	t.Run("decision must be approved or declined", func(t *testing.T) {
		uc := New(&fakePostgres{}, &fakeCache{}, &fakePublisher{}, testLogger())

		_, err := uc.Resolve(ctx, sc, rights.ResolveInput{ContentID: "content-1", Decision: "maybe"})
		require.ErrorIs(t, err, rights.ErrInvalidDecision)

		_, err = uc.Resolve(ctx, sc, rights.ResolveInput{ContentID: "content-1", Decision: model.RightsStatusPending})
		require.ErrorIs(t, err, rights.ErrInvalidDecision)
	})

	t.Run("nothing pending maps to no pending request", func(t *testing.T) {
		repo := &fakePostgres{
			resolveFunc: func(_ context.Context, _ repository.ResolveRightsOptions) (model.RightsRequest, repository.ContentRef, error) {
				return model.RightsRequest{}, repository.ContentRef{}, repository.ErrNoPending
			},
		}
		uc := New(repo, &fakeCache{}, &fakePublisher{}, testLogger())

		_, err := uc.Resolve(ctx, sc, rights.ResolveInput{ContentID: "content-1", Decision: model.RightsStatusApproved})
		require.ErrorIs(t, err, rights.ErrNoPendingRequest)
	})
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "operator-1", Role: "operator"}

	t.Run("returns the full history", func(t *testing.T) {
		repo := &fakePostgres{
			listFunc: func(_ context.Context, contentID string) ([]model.RightsRequest, error) {
				require.Equal(t, "content-1", contentID)
				return []model.RightsRequest{
					{ID: "req-2", Status: model.RightsStatusPending},
					{ID: "req-1", Status: model.RightsStatusDeclined},
				}, nil
			},
		}
		uc := New(repo, &fakeCache{}, &fakePublisher{}, testLogger())

		reqs, err := uc.ListRequests(ctx, sc, "content-1")
		require.NoError(t, err)
		require.Len(t, reqs, 2)
	})
}
