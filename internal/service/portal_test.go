package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portalapi/internal/model"
	"portalapi/internal/sheet"
	sheetMocks "portalapi/internal/sheet/mocks"
	"portalapi/internal/state"
)

func newTestService(t *testing.T) (PortalService, *sheetMocks.MockClient, *state.Collections) {
	t.Helper()
	mClient := new(sheetMocks.MockClient)
	data := state.New()
	return NewPortalService(mClient, data), mClient, data
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch and normalize replaces state", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		mClient.On("FetchAll", ctx).Return(&sheet.Payload{
			Announcements: []map[string]any{{
				"title":    "Feira",
				"active":   "",
				"featured": "TRUE",
				"tags":     "Eventos, Ciências",
				"date":     "10/10/2023",
			}},
		}, nil)

		require.NoError(t, svc.Refresh(ctx))
		require.True(t, data.Loaded())

		snap := data.Snapshot()
		require.Len(t, snap.Announcements, 1)
		a := snap.Announcements[0]
		assert.True(t, a.Active)
		assert.True(t, a.Featured)
		assert.Equal(t, []string{"Eventos", "Ciências"}, a.Tags)
		assert.Equal(t, time.Date(2023, time.October, 10, 12, 0, 0, 0, time.UTC), a.Date)
		assert.Empty(t, snap.Resources)
		assert.Empty(t, snap.Documents)
		mClient.AssertExpectations(t)
	})

	t.Run("fetch failure leaves state untouched", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		mClient.On("FetchAll", ctx).Return(nil, errors.New("network down"))

		assert.Error(t, svc.Refresh(ctx))
		assert.False(t, data.Loaded())
	})
}

func TestPortalBeforeFirstFetch(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Portal()
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = svc.PublicPortal()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestPublicPortalFiltersAndSorts(t *testing.T) {
	svc, _, data := newTestService(t)

	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
	}
	data.ReplaceAll(
		[]model.Announcement{
			{ID: "1", Date: day(20), Active: true},
			{ID: "2", Date: day(5), Active: true, Featured: true},
			{ID: "3", Date: day(25), Active: false},
		},
		[]model.Resource{
			{ID: "b", Title: "Canva", Active: true},
			{ID: "c", Title: "Oculto", Active: false},
			{ID: "a", Title: "BNCC", Active: true},
		},
		[]model.DocumentItem{
			{ID: "old", Date: day(1), Active: true},
			{ID: "new", Date: day(30), Active: true},
		},
	)

	got, err := svc.PublicPortal()
	require.NoError(t, err)

	require.Len(t, got.Announcements, 2)
	assert.Equal(t, "2", got.Announcements[0].ID, "featured pins first")
	assert.Equal(t, "1", got.Announcements[1].ID)

	require.Len(t, got.Resources, 2)
	assert.Equal(t, "BNCC", got.Resources[0].Title)

	require.Len(t, got.Documents, 2)
	assert.Equal(t, "new", got.Documents[0].ID)
}

func TestCreateAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("validation failure issues no remote call", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, nil)

		_, err := svc.CreateAnnouncement(ctx, model.Announcement{Title: "  ", Content: "texto"})
		assert.ErrorIs(t, err, ErrTitleRequired)

		_, err = svc.CreateAnnouncement(ctx, model.Announcement{Title: "Aviso"})
		assert.ErrorIs(t, err, ErrContentRequired)

		mClient.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, data.Snapshot().Announcements)
	})

	t.Run("confirmed write prepends with defaults applied", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll([]model.Announcement{{ID: "1"}}, nil, nil)

		mClient.On("Submit", ctx, sheet.ActionCreateAnnouncement, mock.MatchedBy(func(a model.Announcement) bool {
			return a.ID != "" && a.Author == model.DefaultAuthor && len(a.Tags) == 1 && a.Tags[0] == model.DefaultTag
		})).Return(nil)

		created, err := svc.CreateAnnouncement(ctx, model.Announcement{
			Title:   "Recesso",
			Content: "Sem aula dia 02.",
			Active:  true,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.Date.IsZero())

		snap := data.Snapshot()
		require.Len(t, snap.Announcements, 2)
		assert.Equal(t, created.ID, snap.Announcements[0].ID)
		mClient.AssertExpectations(t)
	})

	t.Run("rejected write leaves state unchanged", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, nil)

		mClient.On("Submit", ctx, sheet.ActionCreateAnnouncement, mock.Anything).
			Return(&sheet.RemoteError{Message: "Sheet não encontrada"})

		_, err := svc.CreateAnnouncement(ctx, model.Announcement{Title: "Aviso", Content: "texto"})
		require.Error(t, err)

		var remoteErr *sheet.RemoteError
		assert.True(t, errors.As(err, &remoteErr))
		assert.Empty(t, data.Snapshot().Announcements)
	})
}

func TestUpdateAnnouncement(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2023, time.October, 10, 12, 0, 0, 0, time.UTC)

	t.Run("preserves creation date across edits", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll([]model.Announcement{{ID: "42", Title: "antiga", Content: "x", Date: created}}, nil, nil)

		mClient.On("Submit", ctx, sheet.ActionUpdateAnnouncement, mock.MatchedBy(func(a model.Announcement) bool {
			return a.ID == "42" && a.Date.Equal(created)
		})).Return(nil)

		updated, err := svc.UpdateAnnouncement(ctx, model.Announcement{
			ID:      "42",
			Title:   "editada",
			Content: "novo texto",
			Date:    time.Now(),
			Active:  true,
		})
		require.NoError(t, err)
		assert.True(t, updated.Date.Equal(created))

		got, ok := data.FindAnnouncement("42")
		require.True(t, ok)
		assert.Equal(t, "editada", got.Title)
		mClient.AssertExpectations(t)
	})

	t.Run("unknown id issues no remote call", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, nil)

		_, err := svc.UpdateAnnouncement(ctx, model.Announcement{ID: "missing", Title: "t", Content: "c"})
		assert.ErrorIs(t, err, ErrNotFound)
		mClient.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("remote envelope error keeps old record", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll([]model.Announcement{{ID: "42", Title: "antiga", Content: "x", Date: created}}, nil, nil)

		mClient.On("Submit", ctx, sheet.ActionUpdateAnnouncement, mock.Anything).
			Return(&sheet.RemoteError{Message: "ID não encontrado"})

		_, err := svc.UpdateAnnouncement(ctx, model.Announcement{ID: "42", Title: "editada", Content: "y"})
		require.Error(t, err)

		got, ok := data.FindAnnouncement("42")
		require.True(t, ok)
		assert.Equal(t, "antiga", got.Title)
	})
}

func TestResourceLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("create appends after confirmation", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, []model.Resource{{ID: "1", Title: "BNCC"}}, nil)

		mClient.On("Submit", ctx, sheet.ActionCreateResource, mock.Anything).Return(nil)

		created, err := svc.CreateResource(ctx, model.Resource{
			Title:    "Canva",
			URL:      "https://www.canva.com",
			Category: model.CategoryFerramentas,
			Active:   true,
		})
		require.NoError(t, err)

		snap := data.Snapshot()
		require.Len(t, snap.Resources, 2)
		assert.Equal(t, created.ID, snap.Resources[1].ID, "resources append to the end")
	})

	t.Run("create without url issues no remote call", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, nil)

		_, err := svc.CreateResource(ctx, model.Resource{Title: "Canva"})
		assert.ErrorIs(t, err, ErrURLRequired)
		mClient.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete removes after confirmation", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, []model.Resource{{ID: "7"}}, nil)

		mClient.On("Submit", ctx, sheet.ActionDeleteResource, deletePayload{ID: "7"}).Return(nil)

		require.NoError(t, svc.DeleteResource(ctx, "7"))
		assert.Empty(t, data.Snapshot().Resources)
	})
}

func TestDocumentLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed delete shrinks by exactly one", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, []model.DocumentItem{{ID: "1"}, {ID: "3"}, {ID: "5"}})

		mClient.On("Submit", ctx, sheet.ActionDeleteDocument, deletePayload{ID: "3"}).Return(nil)

		require.NoError(t, svc.DeleteDocument(ctx, "3"))

		snap := data.Snapshot()
		assert.Len(t, snap.Documents, 2)
		_, ok := data.FindDocument("3")
		assert.False(t, ok)
	})

	t.Run("failed delete keeps the document", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, []model.DocumentItem{{ID: "3"}})

		mClient.On("Submit", ctx, sheet.ActionDeleteDocument, mock.Anything).
			Return(errors.New("network down"))

		assert.Error(t, svc.DeleteDocument(ctx, "3"))
		assert.Len(t, data.Snapshot().Documents, 1)
	})

	t.Run("delete without id issues no remote call", func(t *testing.T) {
		svc, mClient, _ := newTestService(t)

		assert.ErrorIs(t, svc.DeleteDocument(ctx, ""), ErrIDRequired)
		mClient.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("create prepends", func(t *testing.T) {
		svc, mClient, data := newTestService(t)
		data.ReplaceAll(nil, nil, []model.DocumentItem{{ID: "1"}})

		mClient.On("Submit", ctx, sheet.ActionCreateDocument, mock.Anything).Return(nil)

		created, err := svc.CreateDocument(ctx, model.DocumentItem{
			Title:  "Lista de Materiais",
			URL:    "https://example.org/lista.pdf",
			Type:   model.DocumentPDF,
			Active: true,
		})
		require.NoError(t, err)

		snap := data.Snapshot()
		require.Len(t, snap.Documents, 2)
		assert.Equal(t, created.ID, snap.Documents[0].ID)
	})
}
