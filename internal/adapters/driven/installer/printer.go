// Package installer turns install references into the commands a user runs.
//
// The Printer never executes anything: it writes the command for the
// reference scheme and, for MCP servers, the client configuration snippet.
package installer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
)

// Ensure Printer implements the interface.
var _ driven.Installer = (*Printer)(nil)

// Reference schemes understood by the printer.
const (
	SchemeNPM    = "npm"
	SchemeGitHub = "github"
	SchemeSkill  = "skill"
)

// ErrUnsupportedRef is returned for references with an unknown scheme.
var ErrUnsupportedRef = errors.New("unsupported install reference")

// Printer writes install instructions to an output stream.
type Printer struct {
	out       io.Writer
	skillsDir string
}

// NewPrinter creates a printer writing to out. Skill repositories are
// cloned into skillsDir.
func NewPrinter(out io.Writer, skillsDir string) *Printer {
	return &Printer{out: out, skillsDir: skillsDir}
}

// Ref is a parsed install reference.
type Ref struct {
	Scheme string
	Target string
}

// ParseRef splits "scheme:target". Both parts must be non-empty.
func ParseRef(ref string) (Ref, error) {
	scheme, target, ok := strings.Cut(strings.TrimSpace(ref), ":")
	if !ok || scheme == "" || strings.TrimSpace(target) == "" {
		return Ref{}, fmt.Errorf("%w: %w: %q", domain.ErrInvalidInput, ErrUnsupportedRef, ref)
	}
	return Ref{Scheme: strings.ToLower(scheme), Target: strings.TrimSpace(target)}, nil
}

// Install prints the instructions for req.
func (p *Printer) Install(ctx context.Context, req domain.InstallRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if req.Source == domain.SourceLocal {
		return p.printf("%s is already installed", req.Name)
	}
	if req.Ref == "" {
		if req.URL == "" {
			return fmt.Errorf("%w: %s has no install reference", ErrUnsupportedRef, req.Name)
		}
		return p.printf("%s has no automated install. See %s", req.Name, req.URL)
	}

	ref, err := ParseRef(req.Ref)
	if err != nil {
		return err
	}

	switch ref.Scheme {
	case SchemeNPM:
		return p.printNPM(req.Name, ref.Target)
	case SchemeGitHub:
		return p.printClone(req.Name, ref.Target)
	case SchemeSkill:
		return p.printSkill(req.Name, ref.Target)
	default:
		return fmt.Errorf("%w: %w: scheme %q", domain.ErrInvalidInput, ErrUnsupportedRef, ref.Scheme)
	}
}

// Command returns the shell command for ref without printing anything.
func (p *Printer) Command(ref string) (string, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return "", err
	}
	switch r.Scheme {
	case SchemeNPM:
		return "npx -y " + r.Target, nil
	case SchemeGitHub:
		return "git clone --depth 1 https://github.com/" + r.Target + ".git " + p.cloneDir(r.Target), nil
	case SchemeSkill:
		return "npx skills add " + r.Target, nil
	default:
		return "", fmt.Errorf("%w: %w: scheme %q", domain.ErrInvalidInput, ErrUnsupportedRef, r.Scheme)
	}
}

type serverConfig struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

type clientConfig struct {
	MCPServers map[string]serverConfig `json:"mcpServers"`
}

func (p *Printer) printNPM(name, pkg string) error {
	snippet, err := json.MarshalIndent(clientConfig{
		MCPServers: map[string]serverConfig{
			name: {Command: "npx", Args: []string{"-y", pkg}},
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding client config: %w", err)
	}
	return p.printf("Run %s with:\n  npx -y %s\n\nAdd to your MCP client configuration:\n%s", name, pkg, snippet)
}

func (p *Printer) printClone(name, repo string) error {
	cmd, err := p.Command(SchemeGitHub + ":" + repo)
	if err != nil {
		return err
	}
	return p.printf("Install %s with:\n  %s", name, cmd)
}

func (p *Printer) printSkill(name, target string) error {
	return p.printf("Install %s with:\n  npx skills add %s", name, target)
}

func (p *Printer) cloneDir(repo string) string {
	base := repo
	if i := strings.LastIndex(repo, "/"); i >= 0 {
		base = repo[i+1:]
	}
	if p.skillsDir == "" {
		return base
	}
	return filepath.Join(p.skillsDir, base)
}

func (p *Printer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.out, format+"\n", args...)
	return err
}
