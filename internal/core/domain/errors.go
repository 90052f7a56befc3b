package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Catalog Errors.

	// ErrInvalidEntry indicates a catalog entry violates its invariants
	// (empty name, rating outside [0,5], negative downloads).
	ErrInvalidEntry = errors.New("invalid catalog entry")

	// ErrUnknownSource indicates a source filter named a source that does not exist.
	ErrUnknownSource = errors.New("unknown source")

	// ErrSourceUnavailable indicates one source failed during aggregation.
	// The failure is recovered locally: the source contributes no results
	// and the response carries a SourceError describing it.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrConfigLoad indicates a configuration or catalog document is
	// missing or malformed. Callers fall back to built-in defaults.
	ErrConfigLoad = errors.New("config load failure")

	// Comparison Errors.

	// ErrInsufficientEntries indicates a comparison was given fewer than two names.
	ErrInsufficientEntries = errors.New("at least two entries are required for comparison")

	// ErrUnknownEntry indicates a name resolved to no catalog entry.
	// Comparisons degrade this to a flagged placeholder.
	ErrUnknownEntry = errors.New("unknown entry")

	// ErrUnknownCriterion indicates a comparison criterion is not recognised.
	ErrUnknownCriterion = errors.New("unknown comparison criterion")
)

// SourceError annotates a failed source during aggregation.
type SourceError struct {
	// Source is the catalog that failed.
	Source Source

	// Err is the underlying cause (I/O error, timeout, panic).
	Err error
}

// Error implements error.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

type sourceErrorJSON struct {
	Source Source `json:"source"`
	Error  string `json:"error"`
}

// MarshalJSON encodes the source and the cause's message.
func (e *SourceError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(sourceErrorJSON{Source: e.Source, Error: msg})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (e *SourceError) UnmarshalJSON(data []byte) error {
	var raw sourceErrorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Source = raw.Source
	e.Err = errors.New(raw.Error)
	return nil
}

// NewSourceError wraps err as a SourceError for the given source.
func NewSourceError(source Source, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}
