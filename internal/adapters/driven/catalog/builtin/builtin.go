// Package builtin ships the bundled catalog used when no document or
// snapshot backs a source.
package builtin

import (
	"slices"
	"time"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// Install reference schemes understood by the installer.
const (
	RefNPM    = "npm:"
	RefGitHub = "github:"
	RefSkill  = "skill:"
)

// Entries returns every bundled entry in catalog order: MCP servers,
// skill collections, GitHub repositories, then the skills index.
// The slice and its entries are fresh copies.
func Entries() []domain.CatalogEntry {
	var out []domain.CatalogEntry
	for _, group := range [][]domain.CatalogEntry{mcpServers, skills, githubRepos, skillsIndex} {
		for _, e := range group {
			out = append(out, clone(e))
		}
	}
	return out
}

// EntriesFor returns the bundled entries of one source.
func EntriesFor(source domain.Source) []domain.CatalogEntry {
	var out []domain.CatalogEntry
	for _, e := range Entries() {
		if e.Source == source {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns the bundled category table in display order.
func Categories() []domain.Category {
	return slices.Clone(categories)
}

func clone(e domain.CatalogEntry) domain.CatalogEntry {
	e.Keywords = slices.Clone(e.Keywords)
	e.Features = slices.Clone(e.Features)
	e.UseCases = slices.Clone(e.UseCases)
	e.Pros = slices.Clone(e.Pros)
	e.Cons = slices.Clone(e.Cons)
	return domain.NewCatalogEntry(e)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
