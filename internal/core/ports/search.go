package ports

import (
	"context"
	"time"
)

// FileSearcher is the directory-tree search capability the locators run
// against. Production code uses an OS-backed implementation; tests use an
// in-memory tree.
type FileSearcher interface {
	// Enumerate returns up to limit absolute paths under root whose
	// root-relative slash path matches the include glob and does not match
	// the exclude glob. Matching is case-insensitive. Patterns use `**` to
	// span directories.
	Enumerate(ctx context.Context, root string, include string, exclude string, limit int) ([]string, error)

	// ModTime reads the modification time of path. Callers treat a failure
	// as best-effort and must not abort on it.
	ModTime(path string) (time.Time, error)

	// Exists reports whether path exists.
	Exists(path string) bool
}
