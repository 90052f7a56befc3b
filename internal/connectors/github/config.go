package github

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvToken is the environment variable holding an optional access token.
	EnvToken = "GITHUB_TOKEN"

	// DefaultTopic is searched when none is configured.
	DefaultTopic = "mcp-server"

	// DefaultMaxResults caps the repositories fetched per listing.
	DefaultMaxResults = 50

	// DefaultCategory is assigned when no repository topic names a known category.
	DefaultCategory = "development"
)

// Config holds the settings of the live GitHub index.
type Config struct {
	// Topic is the repository topic searched for.
	Topic string

	// MaxResults caps the number of repositories returned.
	MaxResults int

	// Token authenticates requests. Empty means anonymous.
	Token string

	// Categories are the known category IDs. A repository topic equal to
	// one of them becomes the entry's category.
	Categories []string
}

// NewConfig builds a config for topic, reading the token from the
// environment. The token is never persisted.
func NewConfig(topic string, categories []string) *Config {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		topic = DefaultTopic
	}
	return &Config{
		Topic:      topic,
		MaxResults: DefaultMaxResults,
		Token:      os.Getenv(EnvToken),
		Categories: categories,
	}
}

// Validate checks the topic is usable in a search qualifier.
func (c *Config) Validate() error {
	if c.Topic == "" {
		return ErrEmptyTopic
	}
	if strings.ContainsAny(c.Topic, " \t\n:\"") {
		return fmt.Errorf("github: invalid topic %q", c.Topic)
	}
	return nil
}

// Query returns the repository search query.
func (c *Config) Query() string {
	return "topic:" + c.Topic
}

// categoryFor returns the first topic naming a known category.
func (c *Config) categoryFor(topics []string) string {
	for _, t := range topics {
		for _, id := range c.Categories {
			if strings.EqualFold(t, id) {
				return id
			}
		}
	}
	return DefaultCategory
}
