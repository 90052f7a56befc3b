package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query    string `json:"query" jsonschema:"free-text query; empty lists every entry"`
	Category string `json:"category,omitempty" jsonschema:"only return entries in this category ID"`
	Sources  string `json:"sources,omitempty" jsonschema:"comma separated sources: local, official, community, github, skills-index or all"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Task  string `json:"task" jsonschema:"description of the task to find tools for, in English or Chinese"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// CompareInput is the input schema for the compare tool.
type CompareInput struct {
	Names    []string `json:"names" jsonschema:"two or more entry names to compare"`
	Criteria []string `json:"criteria,omitempty" jsonschema:"downloads, features, ratings or popularity (default downloads, features, ratings)"`
}

// CategoriesInput is the input schema for the categories tool.
type CategoriesInput struct{}

// SearchOutput is the output schema for the search and recommend tools.
type SearchOutput struct {
	RequestID string               `json:"request_id"`
	Keywords  []string             `json:"keywords,omitempty"`
	Results   []SearchResultOutput `json:"results"`
	Count     int                  `json:"count"`
	Warnings  []string             `json:"warnings,omitempty"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Score       float64  `json:"score"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Rating      float64  `json:"rating"`
	Downloads   int64    `json:"downloads"`
	Stars       int      `json:"stars,omitempty"`
	Features    []string `json:"features,omitempty"`
	InstallRef  string   `json:"install_ref,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// CompareOutput is the output schema for the compare tool.
type CompareOutput struct {
	Entries           []ComparedOutput                `json:"entries"`
	Rankings          map[string][]domain.RankedValue `json:"rankings"`
	BestByCriterion   map[string]string               `json:"best_by_criterion"`
	BestOverall       string                          `json:"best_overall"`
	FeatureComparison []domain.FeatureSupport         `json:"feature_comparison,omitempty"`
	UseCaseOverlap    []string                        `json:"use_case_overlap,omitempty"`
	Recommendation    string                          `json:"recommendation"`
}

// ComparedOutput is one compared entry.
type ComparedOutput struct {
	Input       string   `json:"input"`
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Unknown     bool     `json:"unknown,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Rating      float64  `json:"rating"`
	Downloads   int64    `json:"downloads"`
	Features    []string `json:"features,omitempty"`
	Pros        []string `json:"pros,omitempty"`
	Cons        []string `json:"cons,omitempty"`
}

// CategoriesOutput is the output schema for the categories tool.
type CategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

// CategoryOutput is one category with its entry count.
type CategoryOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Count int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search MCP servers and skills across every enabled catalog, ranked by relevance",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend MCP servers and skills for a task description",
	}, s.handleRecommend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "categories",
		Description: "List catalog categories with entry counts",
	}, s.handleCategories)

	if s.ports.Compare != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "compare",
			Description: "Compare two or more entries by downloads, features, ratings and popularity",
		}, s.handleCompare)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	sources, err := domain.ParseSources(input.Sources)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	resp, err := s.ports.Search.Search(ctx, domain.Query{
		Text:     input.Query,
		Category: input.Category,
		Sources:  sources,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, toSearchOutput(resp), nil
}

// handleRecommend handles the recommend tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if strings.TrimSpace(input.Task) == "" {
		return nil, SearchOutput{}, domain.ErrInvalidInput
	}

	resp, err := s.ports.Search.Recommend(ctx, input.Task, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, toSearchOutput(resp), nil
}

// handleCategories handles the categories tool invocation.
func (s *Server) handleCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CategoriesInput,
) (*mcp.CallToolResult, CategoriesOutput, error) {
	summaries, err := s.ports.Search.Categories(ctx)
	if err != nil {
		return nil, CategoriesOutput{}, err
	}

	output := CategoriesOutput{Categories: make([]CategoryOutput, len(summaries))}
	for i, c := range summaries {
		output.Categories[i] = CategoryOutput{ID: c.ID, Name: c.Name, Icon: c.Icon, Count: c.Count}
	}
	return nil, output, nil
}

// handleCompare handles the compare tool invocation.
func (s *Server) handleCompare(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompareInput,
) (*mcp.CallToolResult, CompareOutput, error) {
	if s.ports.Compare == nil {
		return nil, CompareOutput{}, ErrMissingCompareService
	}

	criteria, err := domain.ParseCriteria(input.Criteria)
	if err != nil {
		return nil, CompareOutput{}, err
	}

	report, err := s.ports.Compare.Compare(ctx, input.Names, criteria)
	if err != nil {
		return nil, CompareOutput{}, err
	}

	return nil, toCompareOutput(report), nil
}

func toSearchOutput(resp *domain.SearchResponse) SearchOutput {
	output := SearchOutput{
		RequestID: resp.RequestID,
		Keywords:  resp.Keywords,
		Results:   make([]SearchResultOutput, len(resp.Results)),
		Count:     len(resp.Results),
	}

	for i, r := range resp.Results {
		output.Results[i] = SearchResultOutput{
			Name:        r.Entry.Name,
			Source:      string(r.Source),
			Score:       r.Score,
			Category:    r.Entry.Category,
			Description: r.Entry.Description,
			Rating:      r.Entry.Metrics.Rating,
			Downloads:   r.Entry.Metrics.Downloads,
			Stars:       r.Entry.Metrics.Stars,
			Features:    r.Entry.Features,
			InstallRef:  r.Entry.InstallRef,
			URL:         r.Entry.URL,
		}
	}

	for _, e := range resp.SourceErrors {
		output.Warnings = append(output.Warnings, e.Error())
	}

	return output
}

func toCompareOutput(r *domain.ComparisonReport) CompareOutput {
	output := CompareOutput{
		Entries:           make([]ComparedOutput, len(r.Entries)),
		Rankings:          make(map[string][]domain.RankedValue, len(r.Rankings)),
		BestByCriterion:   make(map[string]string, len(r.Criteria)),
		BestOverall:       r.Summary.BestOverall,
		FeatureComparison: r.Summary.FeatureComparison,
		UseCaseOverlap:    r.Summary.UseCaseOverlap,
		Recommendation:    r.Recommendation,
	}

	for i, e := range r.Entries {
		output.Entries[i] = ComparedOutput{
			Input:       e.Input,
			Name:        e.Entry.Name,
			Source:      string(e.Entry.Source),
			Unknown:     e.Unknown,
			Suggestions: e.Suggestions,
			Rating:      e.Entry.Metrics.Rating,
			Downloads:   e.Entry.Metrics.Downloads,
			Features:    e.Entry.Features,
			Pros:        e.Entry.Pros,
			Cons:        e.Entry.Cons,
		}
	}

	for c, ranked := range r.Rankings {
		output.Rankings[string(c)] = ranked
	}
	for _, c := range r.Criteria {
		if w := r.Winner(c); w != "" {
			output.BestByCriterion[string(c)] = w
		}
	}

	return output
}
