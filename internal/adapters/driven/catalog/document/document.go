// Package document loads JSON catalog documents.
//
// A document has the form
//
//	{
//	  "entries":    [ { "name": "...", "source": "official", ... } ],
//	  "categories": [ { "id": "database", "name": "Database", "icon": "🗄️" } ]
//	}
//
// using the JSON field names of domain.CatalogEntry. Entries without a
// source are assigned the loader's default source.
package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads catalog documents from disk.
type Loader struct {
	defaultSource domain.Source
}

// NewLoader creates a loader. Entries lacking a source are attributed
// to defaultSource; an invalid defaultSource means domain.SourceCommunity.
func NewLoader(defaultSource domain.Source) *Loader {
	if !defaultSource.IsValid() {
		defaultSource = domain.SourceCommunity
	}
	return &Loader{defaultSource: defaultSource}
}

type rawDocument struct {
	Entries    []domain.CatalogEntry `json:"entries"`
	Categories []domain.Category     `json:"categories"`
}

// Load parses the document at path.
// Missing files and malformed JSON wrap domain.ErrConfigLoad.
// Entries violating their invariants are dropped with a warning.
func (l *Loader) Load(ctx context.Context, path string) (*driven.CatalogDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigLoad, err)
	}
	return l.Parse(data)
}

// Parse decodes a document from data.
func (l *Loader) Parse(data []byte) (*driven.CatalogDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode catalog document: %v", domain.ErrConfigLoad, err)
	}

	doc := &driven.CatalogDocument{Categories: raw.Categories}
	seen := make(map[domain.Source]map[string]bool)
	for _, e := range raw.Entries {
		if e.Source == "" {
			e.Source = l.defaultSource
		}
		if !e.Source.IsValid() {
			logger.Warn("catalog document: %s: %v %q", e.Name, domain.ErrUnknownSource, e.Source)
			continue
		}
		if err := e.Validate(); err != nil {
			logger.Warn("catalog document: %v", err)
			continue
		}
		if seen[e.Source] == nil {
			seen[e.Source] = make(map[string]bool)
		}
		if seen[e.Source][e.CanonicalName()] {
			logger.Warn("catalog document: %s: duplicate name in %s, keeping the first", e.Name, e.Source)
			continue
		}
		seen[e.Source][e.CanonicalName()] = true
		doc.Entries = append(doc.Entries, domain.NewCatalogEntry(e))
	}

	logger.Debug("catalog document: %d entries, %d categories", len(doc.Entries), len(doc.Categories))
	return doc, nil
}
