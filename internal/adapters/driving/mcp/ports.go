package mcp

import (
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search, recommendations and categories.
	Search driving.SearchService

	// Compare ranks entries side by side. Optional.
	Compare driving.CompareService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
