package mocks

import (
	"context"

	"rankings-sync/core/notion"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of notion.Client
type Client struct {
	mock.Mock
}

func (m *Client) VerifyDatabase(ctx context.Context, databaseID string) error {
	args := m.Called(ctx, databaseID)
	return args.Error(0)
}

func (m *Client) QueryPages(ctx context.Context, databaseID string) ([]notion.PageRef, error) {
	args := m.Called(ctx, databaseID)
	if refs, ok := args.Get(0).([]notion.PageRef); ok {
		return refs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ArchivePage(ctx context.Context, pageID string) error {
	args := m.Called(ctx, pageID)
	return args.Error(0)
}

func (m *Client) CreatePage(ctx context.Context, payload any) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
