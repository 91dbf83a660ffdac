package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ugc-srv/internal/inbox"
	"ugc-srv/internal/inbox/repository"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/log"
)

type fakePostgres struct {
	createFunc func(ctx context.Context, opt repository.CreateInboxItemOptions) (model.InboxItem, error)
	getFunc    func(ctx context.Context, id string) (model.InboxItem, error)
	listFunc   func(ctx context.Context, opt repository.ListInboxItemsOptions) ([]model.InboxItem, error)
	countFunc  func(ctx context.Context, opt repository.ListInboxItemsOptions) (int64, error)
	updateFunc func(ctx context.Context, opt repository.UpdateInboxStatusOptions) (model.InboxItem, error)
}

func (f *fakePostgres) CreateInboxItem(ctx context.Context, opt repository.CreateInboxItemOptions) (model.InboxItem, error) {
	return f.createFunc(ctx, opt)
}

func (f *fakePostgres) GetInboxItemByID(ctx context.Context, id string) (model.InboxItem, error) {
	return f.getFunc(ctx, id)
}

func (f *fakePostgres) ListInboxItems(ctx context.Context, opt repository.ListInboxItemsOptions) ([]model.InboxItem, error) {
	return f.listFunc(ctx, opt)
}

func (f *fakePostgres) CountInboxItems(ctx context.Context, opt repository.ListInboxItemsOptions) (int64, error) {
	return f.countFunc(ctx, opt)
}

func (f *fakePostgres) UpdateInboxStatus(ctx context.Context, opt repository.UpdateInboxStatusOptions) (model.InboxItem, error) {
	return f.updateFunc(ctx, opt)
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error"})
}

// memoryInbox keeps a single item in memory with the guarded transition
// semantics of the real store.
type memoryInbox struct {
	item model.InboxItem
}

func (m *memoryInbox) repo() *fakePostgres {
	return &fakePostgres{
		getFunc: func(_ context.Context, id string) (model.InboxItem, error) {
			if id != m.item.ID {
				return model.InboxItem{}, repository.ErrNotFound
			}
			return m.item, nil
		},
		updateFunc: func(_ context.Context, opt repository.UpdateInboxStatusOptions) (model.InboxItem, error) {
			if opt.ID != m.item.ID || m.item.Status != opt.FromStatus {
				return model.InboxItem{}, repository.ErrStatusMoved
			}
			m.item.Status = opt.ToStatus
			m.item.ReviewedBy = opt.ReviewedBy
			now := time.Now()
			m.item.ReviewedAt = &now
			if opt.Notes != nil {
				m.item.Notes = *opt.Notes
			}
			return m.item, nil
		},
	}
}

func TestPromote(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "reviewer-1", Role: "operator"}

	t.Run("creates an item in status new", func(t *testing.T) {
		repo := &fakePostgres{
			createFunc: func(_ context.Context, opt repository.CreateInboxItemOptions) (model.InboxItem, error) {
				require.Equal(t, "content-1", opt.ContentID)
				require.Equal(t, "worth a look", opt.Notes)
				return model.InboxItem{ID: "inbox-1", ContentID: opt.ContentID, Status: model.InboxStatusNew, Notes: opt.Notes}, nil
			},
		}
		uc := New(repo, testLogger())

		item, err := uc.Promote(ctx, sc, inbox.PromoteInput{ContentID: "content-1", Notes: "worth a look"})
		require.NoError(t, err)
		require.Equal(t, model.InboxStatusNew, item.Status)
	})

	t.Run("missing content maps to the domain error", func(t *testing.T) {
		repo := &fakePostgres{
			createFunc: func(_ context.Context, _ repository.CreateInboxItemOptions) (model.InboxItem, error) {
				return model.InboxItem{}, repository.ErrContentMissing
			},
		}
		uc := New(repo, testLogger())

		_, err := uc.Promote(ctx, sc, inbox.PromoteInput{ContentID: "ghost"})
		require.ErrorIs(t, err, inbox.ErrContentNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "reviewer-1", Role: "operator"}

	t.Run("walks new through approved to published", func(t *testing.T) {
		store := &memoryInbox{item: model.InboxItem{ID: "inbox-1", ContentID: "content-1", Status: model.InboxStatusNew}}
		uc := New(store.repo(), testLogger())

		item, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusApproved})
		require.NoError(t, err)
		require.Equal(t, model.InboxStatusApproved, item.Status)
		require.Equal(t, "reviewer-1", item.ReviewedBy)
		require.NotNil(t, item.ReviewedAt)

		item, err = uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusPublished})
		require.NoError(t, err)
		require.Equal(t, model.InboxStatusPublished, item.Status)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		store := &memoryInbox{item: model.InboxItem{ID: "inbox-1", Status: model.InboxStatusRejected}}
		uc := New(store.repo(), testLogger())

		_, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusApproved})
		require.ErrorIs(t, err, inbox.ErrInvalidTransition)
	})

	t.Run("published cannot move back", func(t *testing.T) {
		store := &memoryInbox{item: model.InboxItem{ID: "inbox-1", Status: model.InboxStatusPublished}}
		uc := New(store.repo(), testLogger())

		_, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusNew})
		require.ErrorIs(t, err, inbox.ErrInvalidTransition)
	})

	t.Run("reviewed cannot reach published directly", func(t *testing.T) {
		store := &memoryInbox{item: model.InboxItem{ID: "inbox-1", Status: model.InboxStatusReviewed}}
		uc := New(store.repo(), testLogger())

		_, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusPublished})
		require.ErrorIs(t, err, inbox.ErrInvalidTransition)
	})

	t.Run("unknown status is rejected before any read", func(t *testing.T) {
		repo := &fakePostgres{
			getFunc: func(_ context.Context, _ string) (model.InboxItem, error) {
				t.Fatal("no read expected")
				return model.InboxItem{}, nil
			},
		}
		uc := New(repo, testLogger())

		_, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: "archived"})
		require.ErrorIs(t, err, inbox.ErrInvalidStatus)
	})

	t.Run("unknown item maps to not found", func(t *testing.T) {
		store := &memoryInbox{item: model.InboxItem{ID: "inbox-1", Status: model.InboxStatusNew}}
		uc := New(store.repo(), testLogger())

		_, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "ghost", Status: model.InboxStatusApproved})
		require.ErrorIs(t, err, inbox.ErrInboxItemNotFound)
	})

	t.Run("losing a concurrent transition surfaces a conflict", func(t *testing.T) {
		repo := &fakePostgres{
			getFunc: func(_ context.Context, id string) (model.InboxItem, error) {
				return model.InboxItem{ID: id, Status: model.InboxStatusNew}, nil
			},
			updateFunc: func(_ context.Context, _ repository.UpdateInboxStatusOptions) (model.InboxItem, error) {
				// Another reviewer moved the item between the read and the write.
				return model.InboxItem{}, repository.ErrStatusMoved
			},
		}
		uc := New(repo, testLogger())

		_, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusApproved})
		require.ErrorIs(t, err, inbox.ErrStatusConflict)
	})

	t.Run("notes are overwritten only when provided", func(t *testing.T) {
		store := &memoryInbox{item: model.InboxItem{ID: "inbox-1", Status: model.InboxStatusNew, Notes: "original"}}
		uc := New(store.repo(), testLogger())

		item, err := uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusReviewed})
		require.NoError(t, err)
		require.Equal(t, "original", item.Notes)

		notes := "checked with legal"
		item, err = uc.UpdateStatus(ctx, sc, inbox.UpdateStatusInput{ID: "inbox-1", Status: model.InboxStatusApproved, Notes: &notes})
		require.NoError(t, err)
		require.Equal(t, "checked with legal", item.Notes)
	})
}

func TestListInbox(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "reviewer-1", Role: "operator"}

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		uc := New(&fakePostgres{}, testLogger())

		_, err := uc.ListInbox(ctx, sc, inbox.ListInboxInput{Status: "archived"})
		require.ErrorIs(t, err, inbox.ErrInvalidStatus)
	})

	t.Run("returns a page with totals", func(t *testing.T) {
		repo := &fakePostgres{
			countFunc: func(_ context.Context, opt repository.ListInboxItemsOptions) (int64, error) {
				require.Equal(t, model.InboxStatusNew, opt.Status)
				return 12, nil
			},
			listFunc: func(_ context.Context, opt repository.ListInboxItemsOptions) ([]model.InboxItem, error) {
				return []model.InboxItem{{ID: "inbox-1"}, {ID: "inbox-2"}}, nil
			},
		}
		uc := New(repo, testLogger())

		out, err := uc.ListInbox(ctx, sc, inbox.ListInboxInput{Status: model.InboxStatusNew})
		require.NoError(t, err)
		require.Len(t, out.Items, 2)
		require.Equal(t, int64(12), out.Paginator.Total)
		require.Equal(t, int64(2), out.Paginator.Count)
	})
}
