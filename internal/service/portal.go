package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"portalapi/internal/model"
	"portalapi/internal/normalize"
	"portalapi/internal/sheet"
	"portalapi/internal/state"
)

var (
	ErrNotLoaded       = errors.New("portal data not loaded")
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("record not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrURLRequired     = errors.New("url is required")
)

// PortalService defines the use cases for the portal's three collections.
//
// Every mutation follows the same rule: validate locally, write to the
// remote store, and only patch the in-memory collections after the store
// confirmed the write. A rejected write leaves local state untouched so the
// portal never shows a record the store refused.
type PortalService interface {
	// Refresh fetches every collection from the remote store, normalizes
	// the rows, and replaces local state wholesale.
	Refresh(ctx context.Context) error

	// Portal returns the full collections, inactive records included.
	Portal() (model.PortalData, error)

	// PublicPortal returns only active records, in display order.
	PublicPortal() (model.PortalData, error)

	CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error

	CreateResource(ctx context.Context, r model.Resource) (*model.Resource, error)
	UpdateResource(ctx context.Context, r model.Resource) (*model.Resource, error)
	DeleteResource(ctx context.Context, id string) error

	CreateDocument(ctx context.Context, d model.DocumentItem) (*model.DocumentItem, error)
	UpdateDocument(ctx context.Context, d model.DocumentItem) (*model.DocumentItem, error)
	DeleteDocument(ctx context.Context, id string) error
}

type portalService struct {
	sheets sheet.Client
	data   *state.Collections
	now    func() time.Time
}

// NewPortalService constructs a PortalService over the given remote store
// client and collection state.
func NewPortalService(sheets sheet.Client, data *state.Collections) PortalService {
	return &portalService{
		sheets: sheets,
		data:   data,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var tracer = otel.Tracer("portalapi/internal/service")

func (s *portalService) Refresh(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "portal.refresh")
	defer span.End()

	payload, err := s.sheets.FetchAll(ctx)
	if err != nil {
		return err
	}

	announcements := normalize.Announcements(payload.Announcements)
	resources := normalize.Resources(payload.Resources)
	documents := normalize.Documents(payload.Documents)

	span.SetAttributes(
		attribute.Int("portal.announcements", len(announcements)),
		attribute.Int("portal.resources", len(resources)),
		attribute.Int("portal.documents", len(documents)),
	)

	s.data.ReplaceAll(announcements, resources, documents)
	return nil
}

func (s *portalService) Portal() (model.PortalData, error) {
	if !s.data.Loaded() {
		return model.PortalData{}, ErrNotLoaded
	}
	return s.data.Snapshot(), nil
}

func (s *portalService) PublicPortal() (model.PortalData, error) {
	snap, err := s.Portal()
	if err != nil {
		return model.PortalData{}, err
	}

	out := model.PortalData{}
	for _, a := range snap.Announcements {
		if a.Active {
			out.Announcements = append(out.Announcements, a)
		}
	}
	for _, r := range snap.Resources {
		if r.Active {
			out.Resources = append(out.Resources, r)
		}
	}
	for _, d := range snap.Documents {
		if d.Active {
			out.Documents = append(out.Documents, d)
		}
	}

	// Display order: pinned announcements first, then newest first;
	// documents newest first; resources alphabetical.
	sort.SliceStable(out.Announcements, func(i, j int) bool {
		ai, aj := out.Announcements[i], out.Announcements[j]
		if ai.Featured != aj.Featured {
			return ai.Featured
		}
		return ai.Date.After(aj.Date)
	})
	sort.SliceStable(out.Documents, func(i, j int) bool {
		return out.Documents[i].Date.After(out.Documents[j].Date)
	})
	sort.SliceStable(out.Resources, func(i, j int) bool {
		return out.Resources[i].Title < out.Resources[j].Title
	})

	return out, nil
}

// newRecordID derives an id from the creation instant, matching the ids
// the admin panel has always written to the sheet.
func (s *portalService) newRecordID() string {
	return strconv.FormatInt(s.now().UnixMilli(), 10)
}

func (s *portalService) CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	if a.Title == "" {
		return nil, ErrTitleRequired
	}
	if a.Content == "" {
		return nil, ErrContentRequired
	}

	a.ID = s.newRecordID()
	if a.Date.IsZero() {
		a.Date = s.now()
	}
	if a.Author == "" {
		a.Author = model.DefaultAuthor
	}
	a.Tags = cleanTags(a.Tags)
	if a.AttachmentURL == "" {
		a.AttachmentType = ""
	}

	if err := s.sheets.Submit(ctx, sheet.ActionCreateAnnouncement, a); err != nil {
		return nil, err
	}
	s.data.PrependAnnouncement(a)
	return &a, nil
}

func (s *portalService) UpdateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	if a.ID == "" {
		return nil, ErrIDRequired
	}
	existing, ok := s.data.FindAnnouncement(a.ID)
	if !ok {
		return nil, ErrNotFound
	}

	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	if a.Title == "" {
		return nil, ErrTitleRequired
	}
	if a.Content == "" {
		return nil, ErrContentRequired
	}

	// Edits never move an announcement on the timeline.
	a.Date = existing.Date
	if a.Author == "" {
		a.Author = model.DefaultAuthor
	}
	a.Tags = cleanTags(a.Tags)
	if a.AttachmentURL == "" {
		a.AttachmentType = ""
	}

	if err := s.sheets.Submit(ctx, sheet.ActionUpdateAnnouncement, a); err != nil {
		return nil, err
	}
	s.data.UpdateAnnouncement(a)
	return &a, nil
}

func (s *portalService) DeleteAnnouncement(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.sheets.Submit(ctx, sheet.ActionDeleteAnnouncement, deletePayload{ID: id}); err != nil {
		return err
	}
	s.data.RemoveAnnouncement(id)
	return nil
}

func (s *portalService) CreateResource(ctx context.Context, r model.Resource) (*model.Resource, error) {
	r.Title = strings.TrimSpace(r.Title)
	r.URL = strings.TrimSpace(r.URL)
	if r.Title == "" {
		return nil, ErrTitleRequired
	}
	if r.URL == "" {
		return nil, ErrURLRequired
	}

	r.ID = s.newRecordID()
	if r.Date.IsZero() {
		r.Date = s.now()
	}

	if err := s.sheets.Submit(ctx, sheet.ActionCreateResource, r); err != nil {
		return nil, err
	}
	s.data.AppendResource(r)
	return &r, nil
}

func (s *portalService) UpdateResource(ctx context.Context, r model.Resource) (*model.Resource, error) {
	if r.ID == "" {
		return nil, ErrIDRequired
	}
	existing, ok := s.data.FindResource(r.ID)
	if !ok {
		return nil, ErrNotFound
	}

	r.Title = strings.TrimSpace(r.Title)
	r.URL = strings.TrimSpace(r.URL)
	if r.Title == "" {
		return nil, ErrTitleRequired
	}
	if r.URL == "" {
		return nil, ErrURLRequired
	}
	r.Date = existing.Date

	if err := s.sheets.Submit(ctx, sheet.ActionUpdateResource, r); err != nil {
		return nil, err
	}
	s.data.UpdateResource(r)
	return &r, nil
}

func (s *portalService) DeleteResource(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.sheets.Submit(ctx, sheet.ActionDeleteResource, deletePayload{ID: id}); err != nil {
		return err
	}
	s.data.RemoveResource(id)
	return nil
}

func (s *portalService) CreateDocument(ctx context.Context, d model.DocumentItem) (*model.DocumentItem, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.URL = strings.TrimSpace(d.URL)
	if d.Title == "" {
		return nil, ErrTitleRequired
	}
	if d.URL == "" {
		return nil, ErrURLRequired
	}

	d.ID = s.newRecordID()
	if d.Date.IsZero() {
		d.Date = s.now()
	}

	if err := s.sheets.Submit(ctx, sheet.ActionCreateDocument, d); err != nil {
		return nil, err
	}
	s.data.PrependDocument(d)
	return &d, nil
}

func (s *portalService) UpdateDocument(ctx context.Context, d model.DocumentItem) (*model.DocumentItem, error) {
	if d.ID == "" {
		return nil, ErrIDRequired
	}
	existing, ok := s.data.FindDocument(d.ID)
	if !ok {
		return nil, ErrNotFound
	}

	d.Title = strings.TrimSpace(d.Title)
	d.URL = strings.TrimSpace(d.URL)
	if d.Title == "" {
		return nil, ErrTitleRequired
	}
	if d.URL == "" {
		return nil, ErrURLRequired
	}
	d.Date = existing.Date

	if err := s.sheets.Submit(ctx, sheet.ActionUpdateDocument, d); err != nil {
		return nil, err
	}
	s.data.UpdateDocument(d)
	return &d, nil
}

func (s *portalService) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.sheets.Submit(ctx, sheet.ActionDeleteDocument, deletePayload{ID: id}); err != nil {
		return err
	}
	s.data.RemoveDocument(id)
	return nil
}

// deletePayload is the data object delete actions carry to the remote
// store: the row id and nothing else.
type deletePayload struct {
	ID string `json:"id"`
}

// cleanTags trims labels, drops empty ones, and guarantees at least one.
func cleanTags(in []string) []string {
	var out []string
	for _, t := range in {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{model.DefaultTag}
	}
	return out
}
