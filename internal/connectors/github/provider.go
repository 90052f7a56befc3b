package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.CatalogProvider = (*Provider)(nil)

// RefPrefix is the install reference scheme of repository entries.
const RefPrefix = "github:"

// Provider lists repositories tagged with the configured topic as entries
// of the github source.
type Provider struct {
	client *Client
	cfg    *Config
}

// NewProvider creates a live GitHub provider.
func NewProvider(client *Client, cfg *Config) *Provider {
	return &Provider{client: client, cfg: cfg}
}

// Source returns the github source.
func (p *Provider) Source() domain.Source {
	return domain.SourceGitHub
}

// ListEntries searches repositories by topic, most starred first.
func (p *Provider) ListEntries(ctx context.Context, category string) ([]domain.CatalogEntry, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	repos, err := p.client.SearchRepositories(ctx, p.cfg.Query(), p.cfg.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", p.cfg.Query(), err)
	}

	entries := make([]domain.CatalogEntry, 0, len(repos))
	seen := make(map[string]bool, len(repos))
	for _, repo := range repos {
		if repo.GetArchived() {
			logger.Debug("github: skipping archived %s", repo.GetFullName())
			continue
		}
		entry := p.entryFromRepo(repo)
		if seen[entry.CanonicalName()] {
			logger.Debug("github: skipping %s, name already listed", repo.GetFullName())
			continue
		}
		seen[entry.CanonicalName()] = true

		if domain.InCategory(entry.Category, category) {
			entries = append(entries, entry)
		}
	}

	logger.Debug("github: %d entries for %s", len(entries), p.cfg.Query())
	return entries, nil
}

func (p *Provider) entryFromRepo(repo *gh.Repository) domain.CatalogEntry {
	topics := repo.Topics
	return domain.NewCatalogEntry(domain.CatalogEntry{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Keywords:    append(domain.NameTokens(repo.GetName()), topics...),
		Description: repo.GetDescription(),
		Category:    p.cfg.categoryFor(topics),
		Source:      domain.SourceGitHub,
		Publisher:   repo.GetOwner().GetLogin(),
		Metrics:     domain.Metrics{Stars: repo.GetStargazersCount()},
		InstallRef:  RefPrefix + repo.GetFullName(),
		URL:         repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		LastUpdated: repo.GetPushedAt().Time,
	})
}
