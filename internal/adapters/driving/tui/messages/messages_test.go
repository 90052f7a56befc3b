package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

func TestSearchCompleted(t *testing.T) {
	t.Run("with response", func(t *testing.T) {
		resp := &domain.SearchResponse{
			RequestID: "req-1",
			Results: []domain.ScoredResult{
				{Entry: domain.CatalogEntry{Name: "postgres"}, Score: 0.9},
			},
		}
		msg := SearchCompleted{Response: resp}

		require.NotNil(t, msg.Response)
		assert.Len(t, msg.Response.Results, 1)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := SearchCompleted{Err: errors.New("search failed")}

		assert.Nil(t, msg.Response)
		assert.EqualError(t, msg.Err, "search failed")
	})
}

func TestResultSelected(t *testing.T) {
	msg := ResultSelected{Result: domain.ScoredResult{Entry: domain.CatalogEntry{Name: "fetch"}, Score: 0.5}}

	assert.Equal(t, "fetch", msg.Result.Entry.Name)
}

func TestCategoriesLoaded(t *testing.T) {
	msg := CategoriesLoaded{Categories: []domain.CategorySummary{
		{Category: domain.Category{ID: "database", Name: "Database"}, Count: 4},
	}}

	require.Len(t, msg.Categories, 1)
	assert.Equal(t, 4, msg.Categories[0].Count)
	assert.Equal(t, "database", CategorySelected{ID: msg.Categories[0].ID}.ID)
}

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewMenu, "menu"},
		{ViewSearch, "search"},
		{ViewCategories, "categories"},
		{ViewDetail, "detail"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewChanged(t *testing.T) {
	msg := ViewChanged{View: ViewCategories}

	assert.Equal(t, ViewCategories, msg.View)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")

	assert.ErrorIs(t, ErrorOccurred{Err: err}.Err, err)
}
