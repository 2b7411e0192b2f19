package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portalapi/internal/sheet"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) FetchAll(ctx context.Context) (*sheet.Payload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sheet.Payload), args.Error(1)
}

func (m *MockClient) Submit(ctx context.Context, action sheet.Action, data any) error {
	args := m.Called(ctx, action, data)
	return args.Error(0)
}
