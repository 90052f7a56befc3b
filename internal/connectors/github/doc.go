// Package github implements the live index of GitHub skill and MCP server
// repositories.
//
// Repositories tagged with the configured topic are searched, most starred
// first, and become entries of the github source. Each entry carries the
// repository's star count, which the scoring engine adds as a remote signal.
//
// # Architecture
//
// The package follows the driven port pattern defined in [driven.CatalogProvider].
// It comprises the following components:
//
//   - Provider: maps repositories to catalog entries
//   - Client: handles GitHub API communication with rate limiting
//   - Config: topic, result cap and token
//
// # Authentication
//
// A token is optional and read from the GITHUB_TOKEN environment variable.
// It is never written to the configuration file. Authenticated requests get
// 30 searches per minute; anonymous requests get 10.
//
// # Rate Limiting
//
// The client throttles proactively with a token bucket sized to the search
// quota and reactively waits for the reset time reported in response headers
// when the remaining quota is exhausted.
package github
