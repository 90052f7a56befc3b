package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceError_IsSourceUnavailable(t *testing.T) {
	err := NewSourceError(SourceGitHub, context.DeadlineExceeded)

	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "source github unavailable: context deadline exceeded", err.Error())
}

func TestSourceError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("aggregate: %w", NewSourceError(SourceLocal, ErrNotFound))

	var se *SourceError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, SourceLocal, se.Source)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestErrors_AreDistinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrNotImplemented, ErrInvalidEntry,
		ErrUnknownSource, ErrSourceUnavailable, ErrConfigLoad,
		ErrInsufficientEntries, ErrUnknownEntry, ErrUnknownCriterion,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestSearchResponse_JSONCarriesWarnings(t *testing.T) {
	resp := SearchResponse{
		RequestID:    "req-1",
		SourceErrors: []*SourceError{NewSourceError(SourceGitHub, errors.New("rate limited"))},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"warnings":[{"source":"github","error":"rate limited"}]`)

	var decoded SearchResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.SourceErrors, 1)
	assert.Equal(t, SourceGitHub, decoded.SourceErrors[0].Source)
	assert.True(t, errors.Is(decoded.SourceErrors[0], ErrSourceUnavailable))
	assert.EqualError(t, decoded.SourceErrors[0], "source github unavailable: rate limited")
}

func TestSearchResponse_JSONOmitsEmptyWarnings(t *testing.T) {
	data, err := json.Marshal(SearchResponse{RequestID: "req-1"})

	require.NoError(t, err)
	assert.NotContains(t, string(data), "warnings")
}
