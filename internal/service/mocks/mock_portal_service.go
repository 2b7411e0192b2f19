package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portalapi/internal/model"
)

type MockPortalService struct {
	mock.Mock
}

func (m *MockPortalService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPortalService) Portal() (model.PortalData, error) {
	args := m.Called()
	return args.Get(0).(model.PortalData), args.Error(1)
}

func (m *MockPortalService) PublicPortal() (model.PortalData, error) {
	args := m.Called()
	return args.Get(0).(model.PortalData), args.Error(1)
}

func (m *MockPortalService) CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Announcement), args.Error(1)
}

func (m *MockPortalService) UpdateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Announcement), args.Error(1)
}

func (m *MockPortalService) DeleteAnnouncement(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPortalService) CreateResource(ctx context.Context, r model.Resource) (*model.Resource, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockPortalService) UpdateResource(ctx context.Context, r model.Resource) (*model.Resource, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockPortalService) DeleteResource(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPortalService) CreateDocument(ctx context.Context, d model.DocumentItem) (*model.DocumentItem, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentItem), args.Error(1)
}

func (m *MockPortalService) UpdateDocument(ctx context.Context, d model.DocumentItem) (*model.DocumentItem, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentItem), args.Error(1)
}

func (m *MockPortalService) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
