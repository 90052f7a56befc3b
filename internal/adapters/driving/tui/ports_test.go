package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc     func(ctx context.Context, query domain.Query) (*domain.SearchResponse, error)
	CategoriesFunc func(ctx context.Context) ([]domain.CategorySummary, error)

	lastQuery domain.Query
}

func (m *MockSearchService) Search(ctx context.Context, query domain.Query) (*domain.SearchResponse, error) {
	m.lastQuery = query
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return &domain.SearchResponse{Query: query}, nil
}

func (m *MockSearchService) Recommend(_ context.Context, _ string, _ int) (*domain.SearchResponse, error) {
	return &domain.SearchResponse{}, nil
}

func (m *MockSearchService) Lookup(_ context.Context, _ string) (*domain.CatalogEntry, error) {
	return nil, domain.ErrUnknownEntry
}

func (m *MockSearchService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *MockSearchService) Top(_ context.Context, _ domain.TopOptions) ([]domain.CatalogEntry, error) {
	return nil, nil
}

func (m *MockSearchService) Refresh() {}

func TestNewPorts(t *testing.T) {
	search := &MockSearchService{}

	ports := NewPorts(search)

	require.NotNil(t, ports)
	assert.Equal(t, search, ports.Search)
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, NewPorts(&MockSearchService{}).Validate())
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingSearchService)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
}
