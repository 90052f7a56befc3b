package mcp

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response   *domain.SearchResponse
	entry      *domain.CatalogEntry
	categories []domain.CategorySummary
	err        error

	lastQuery domain.Query
	lastTask  string
	lastLimit int
	lastName  string
}

func (m *mockSearchService) Search(_ context.Context, query domain.Query) (*domain.SearchResponse, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	if m.response == nil {
		return &domain.SearchResponse{Query: query}, nil
	}
	return m.response, nil
}

func (m *mockSearchService) Recommend(_ context.Context, task string, limit int) (*domain.SearchResponse, error) {
	m.lastTask, m.lastLimit = task, limit
	if m.err != nil {
		return nil, m.err
	}
	if m.response == nil {
		return &domain.SearchResponse{}, nil
	}
	return m.response, nil
}

func (m *mockSearchService) Lookup(_ context.Context, name string) (*domain.CatalogEntry, error) {
	m.lastName = name
	if m.err != nil {
		return nil, m.err
	}
	if m.entry == nil {
		return nil, domain.ErrUnknownEntry
	}
	return m.entry, nil
}

func (m *mockSearchService) Categories(_ context.Context) ([]domain.CategorySummary, error) {
	return m.categories, m.err
}

func (m *mockSearchService) Top(_ context.Context, _ domain.TopOptions) ([]domain.CatalogEntry, error) {
	return nil, m.err
}

func (m *mockSearchService) Refresh() {}

// mockCompareService is a mock implementation of driving.CompareService.
type mockCompareService struct {
	report   *domain.ComparisonReport
	err      error
	names    []string
	criteria []domain.Criterion
}

func (m *mockCompareService) Compare(
	_ context.Context,
	names []string,
	criteria []domain.Criterion,
) (*domain.ComparisonReport, error) {
	m.names, m.criteria = names, criteria
	return m.report, m.err
}

// Verify interface compliance.
var (
	_ driving.SearchService  = (*mockSearchService)(nil)
	_ driving.CompareService = (*mockCompareService)(nil)
)
