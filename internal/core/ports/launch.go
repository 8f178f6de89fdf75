package ports

import (
	"context"

	"github.com/fomox/tracescout/internal/core/trace"
)

// ViewerLauncher starts the external trace viewer against a resolved pair of
// artifact paths. Implementations invoke the tool argv-based, never through a
// shell, and wait for process exit.
type ViewerLauncher interface {
	Launch(ctx context.Context, pair trace.ResolvedPair, workDir string) error
}
