package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Source identifies the provenance catalog an entry was found in.
type Source string

// Known sources.
const (
	// SourceLocal is the directory of skills installed on this machine.
	SourceLocal Source = "local"

	// SourceOfficial is the catalog of officially maintained MCP servers.
	SourceOfficial Source = "official"

	// SourceCommunity is the catalog of community maintained MCP servers.
	SourceCommunity Source = "community"

	// SourceGitHub is the remote index of GitHub skill repositories.
	SourceGitHub Source = "github"

	// SourceSkillsIndex is the remote skills store ranked by installs.
	SourceSkillsIndex Source = "skills-index"

	// SourceUnknown marks placeholder entries that resolved to nothing.
	SourceUnknown Source = "unknown"
)

// SourceAll is the filter value selecting every enabled source.
const SourceAll = "all"

// AllSources returns every real source in priority order.
func AllSources() []Source {
	return []Source{SourceLocal, SourceOfficial, SourceCommunity, SourceGitHub, SourceSkillsIndex}
}

// IsValid returns true if the source is a real catalog.
func (s Source) IsValid() bool {
	switch s {
	case SourceLocal, SourceOfficial, SourceCommunity, SourceGitHub, SourceSkillsIndex:
		return true
	default:
		return false
	}
}

// IsRemote returns true for remote indexes. Entries from remote indexes
// carry extra ranking signals (stars, rank position).
func (s Source) IsRemote() bool {
	return s == SourceGitHub || s == SourceSkillsIndex
}

// Priority orders sources for deduplication tie-breaks.
// Lower values win: local, official, community, then any remote index.
func (s Source) Priority() int {
	switch s {
	case SourceLocal:
		return 0
	case SourceOfficial:
		return 1
	case SourceCommunity:
		return 2
	case SourceGitHub, SourceSkillsIndex:
		return 3
	default:
		return 4
	}
}

// Icon returns a short glyph for terminal output.
func (s Source) Icon() string {
	switch s {
	case SourceLocal:
		return "📁"
	case SourceOfficial:
		return "✅"
	case SourceCommunity:
		return "👥"
	case SourceGitHub:
		return "🐙"
	case SourceSkillsIndex:
		return "▲"
	default:
		return "📦"
	}
}

// String returns the string representation.
func (s Source) String() string {
	return string(s)
}

// ParseSource converts a name to a Source.
func ParseSource(name string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(name)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return s, nil
}

// ParseSources converts a comma separated filter to a set of sources.
// An empty filter or "all" yields nil, meaning every enabled source.
// The result is sorted by priority and free of duplicates.
func ParseSources(filter string) ([]Source, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, SourceAll) {
		return nil, nil
	}

	seen := make(map[Source]bool)
	var sources []Source
	for _, part := range strings.Split(filter, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(part), SourceAll) {
			return nil, nil
		}
		s, err := ParseSource(part)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			sources = append(sources, s)
		}
	}
	SortSources(sources)
	return sources, nil
}

// SortSources sorts sources by priority, then by name.
func SortSources(sources []Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		pi, pj := sources[i].Priority(), sources[j].Priority()
		if pi != pj {
			return pi < pj
		}
		return sources[i] < sources[j]
	})
}
