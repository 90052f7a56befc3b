// Package domain defines the core business entities for capseek.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CatalogEntry: An installable capability described by one catalog
//   - Source: The provenance catalog an entry was found in
//   - Query: A normalised search request
//   - ScoredResult: A CatalogEntry ranked against a Query
//   - ComparisonReport: Per-criterion rankings for a handful of entries
//   - Settings: Tunables loaded from configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
