// Package mcp provides an MCP (Model Context Protocol) server adapter for capseek.
// It lets AI assistants search, recommend and compare catalog entries.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingCompareService is returned by the compare tool when no compare
// service was provided.
var ErrMissingCompareService = errors.New("mcp: compare service is not configured")
