package services

import (
	"strings"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// phraseExpansion maps a domain phrase to its canonical keywords.
type phraseExpansion struct {
	phrase   string
	keywords []string
}

// defaultExpansions is checked in order; every phrase contained in the
// input contributes its keywords.
var defaultExpansions = []phraseExpansion{
	{"数据库", []string{"database", "sql", "postgres", "mysql", "mongo"}},
	{"database", []string{"database", "sql", "postgres", "mysql", "mongo"}},
	{"sql", []string{"sql", "database", "postgres", "mysql"}},
	{"文件", []string{"filesystem", "file", "pdf", "document"}},
	{"file", []string{"filesystem", "file", "pdf", "document"}},
	{"git", []string{"git", "github", "version-control"}},
	{"版本控制", []string{"git", "github", "version-control"}},
	{"api", []string{"fetch", "http", "api", "web"}},
	{"web", []string{"fetch", "http", "web", "puppeteer"}},
	{"http", []string{"fetch", "http", "api", "web"}},
	{"搜索", []string{"search", "brave", "google"}},
	{"search", []string{"search", "brave", "google"}},
	{"ai", []string{"ai", "openai", "huggingface", "gpt"}},
	{"人工智能", []string{"ai", "openai", "huggingface", "gpt"}},
	{"pdf", []string{"pdf", "document", "file"}},
	{"文档", []string{"pdf", "document", "file"}},
}

// KeywordExpander maps free text to canonical search keywords.
type KeywordExpander struct {
	expansions []phraseExpansion
}

// NewKeywordExpander creates an expander with the built-in phrase table.
func NewKeywordExpander() *KeywordExpander {
	return &KeywordExpander{expansions: defaultExpansions}
}

// Expand returns the keywords for text, de-duplicated in first-seen order.
// Phrases match as substrings of the lowercase text. When no phrase
// matches, the lowercase whitespace tokens of text are returned instead.
func (k *KeywordExpander) Expand(text string) []string {
	lower := strings.ToLower(text)

	var keywords []string
	seen := make(map[string]bool)
	for _, exp := range k.expansions {
		if !strings.Contains(lower, exp.phrase) {
			continue
		}
		for _, kw := range exp.keywords {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}

	if len(keywords) == 0 {
		return domain.Tokenize(lower)
	}
	return keywords
}
