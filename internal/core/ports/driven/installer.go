package driven

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// Installer fetches and installs an entry given its install reference.
// The search and comparison engine never calls it: it only returns
// references, and callers decide whether to install.
type Installer interface {
	Install(ctx context.Context, req domain.InstallRequest) error
}
