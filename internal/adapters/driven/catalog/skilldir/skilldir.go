// Package skilldir serves the skills installed on this machine.
//
// Every directory holding a SKILL.md file becomes one entry of the local
// source. The file may start with a YAML frontmatter block:
//
//	---
//	name: pdf
//	description: Extract text and tables from PDF files
//	keywords: [pdf, extract]
//	category: document
//	---
//
// Missing fields fall back to the directory name and the first line of the
// body that is not a heading.
package skilldir

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.CatalogProvider = (*Provider)(nil)

// SkillFile is the marker file of a skill directory.
const SkillFile = "SKILL.md"

// DefaultMaxDepth is used when no positive depth is configured.
const DefaultMaxDepth = 3

// maxDescriptionRunes truncates descriptions taken from the body.
const maxDescriptionRunes = 200

// Provider scans a skills directory on every call.
type Provider struct {
	dir      string
	maxDepth int
}

// NewProvider creates a provider for dir. Skills nested deeper than
// maxDepth directories below dir are ignored.
func NewProvider(dir string, maxDepth int) *Provider {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Provider{dir: dir, maxDepth: maxDepth}
}

// Dir returns the scanned directory.
func (p *Provider) Dir() string {
	return p.dir
}

// Source returns the local source.
func (p *Provider) Source() domain.Source {
	return domain.SourceLocal
}

// ListEntries scans the directory. A missing directory yields no entries.
func (p *Provider) ListEntries(ctx context.Context, category string) ([]domain.CatalogEntry, error) {
	info, err := os.Stat(p.dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("skills directory %s does not exist", p.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("stat skills directory %s: %w", p.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("skills path is not a directory: %s", p.dir)
	}

	var entries []domain.CatalogEntry
	seen := make(map[string]bool)
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != p.dir && p.depth(path) > p.maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != SkillFile || filepath.Dir(path) == p.dir {
			return nil
		}

		entry, err := readSkill(path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		if seen[entry.CanonicalName()] {
			logger.Debug("skipping duplicate skill %s at %s", entry.Name, path)
			return nil
		}
		seen[entry.CanonicalName()] = true

		if domain.InCategory(entry.Category, category) {
			entries = append(entries, entry)
		}
		return nil
	}

	if err := filepath.WalkDir(p.dir, walkFn); err != nil {
		return nil, fmt.Errorf("scan skills: %w", err)
	}
	logger.Debug("found %d local skill(s) in %s", len(entries), p.dir)
	return entries, nil
}

func (p *Provider) depth(path string) int {
	rel, err := filepath.Rel(p.dir, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(filepath.ToSlash(rel), "/"))
}

// frontmatter holds the recognised SKILL.md header fields.
type frontmatter struct {
	Name        string
	Description string
	Category    string
	Keywords    []string
}

func readSkill(path string) (domain.CatalogEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("read: %w", err)
	}
	fm, body := splitFrontmatter(string(b))

	dir := filepath.Dir(path)
	name := fm.Name
	if name == "" {
		name = filepath.Base(dir)
	}
	desc := fm.Description
	if desc == "" {
		desc = truncate(inferDescriptionFromBody(body), maxDescriptionRunes)
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("stat: %w", err)
	}

	entry := domain.NewCatalogEntry(domain.CatalogEntry{
		Name:        name,
		FullName:    dir,
		Keywords:    append(fm.Keywords, domain.NameTokens(name)...),
		Description: desc,
		Category:    fm.Category,
		Source:      domain.SourceLocal,
		URL:         "file://" + filepath.ToSlash(dir),
		LastUpdated: info.ModTime().UTC(),
	})
	return entry, entry.Validate()
}

// splitFrontmatter separates the YAML header from the body. Content without
// a header is returned whole as the body; an unreadable header is dropped.
func splitFrontmatter(content string) (frontmatter, string) {
	s := strings.TrimPrefix(content, "\ufeff")
	first, rest, found := strings.Cut(s, "\n")
	if !found || !isDelimiter(first) {
		return frontmatter{}, s
	}

	header, body, ok := cutAtDelimiter(rest)
	if !ok {
		return frontmatter{}, s
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(header)), &raw); err != nil {
		logger.Debug("ignoring unreadable frontmatter: %v", err)
		return frontmatter{}, body
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(k)] = v
	}

	fm := frontmatter{
		Name:        stringField(fields["name"]),
		Description: stringField(fields["description"]),
		Category:    strings.ToLower(stringField(fields["category"])),
	}
	fm.Keywords = append(listField(fields["keywords"]), listField(fields["tags"])...)
	return fm, body
}

// cutAtDelimiter splits s around the first line consisting only of "---".
func cutAtDelimiter(s string) (before, after string, found bool) {
	for start := 0; start <= len(s); {
		end := strings.IndexByte(s[start:], '\n')
		if end < 0 {
			if isDelimiter(s[start:]) {
				return s[:start], "", true
			}
			return s, "", false
		}
		end += start
		if isDelimiter(s[start:end]) {
			return s[:start], s[end+1:], true
		}
		start = end + 1
	}
	return s, "", false
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == "---"
}

func stringField(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// listField accepts either a YAML sequence or a comma separated string.
func listField(v any) []string {
	switch val := v.(type) {
	case string:
		return strings.Split(val, ",")
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func inferDescriptionFromBody(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
