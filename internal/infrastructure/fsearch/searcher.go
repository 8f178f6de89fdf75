package fsearch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Searcher is the OS-backed implementation of the FileSearcher port. Glob
// matching is case-insensitive to mirror the Windows-style trees the build
// output comes from, and walk errors on individual entries are skipped
// rather than failing the whole enumeration.
type Searcher struct{}

// New creates an OS-backed searcher.
func New() *Searcher {
	return &Searcher{}
}

// Enumerate walks root and collects up to limit absolute paths whose
// root-relative slash path matches include and not exclude. Excluded
// directories are pruned without descending; the walk stops early once the
// limit is reached.
func (s *Searcher) Enumerate(ctx context.Context, root string, include string, exclude string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if exclude != "" && matchFold(exclude, rel) {
				return fs.SkipDir
			}
			return nil
		}

		if exclude != "" && matchFold(exclude, rel) {
			return nil
		}
		if !matchFold(include, rel) {
			return nil
		}

		matches = append(matches, path)
		if len(matches) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ModTime reads the modification time of path.
func (s *Searcher) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Exists reports whether path exists.
func (s *Searcher) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// matchFold matches a slash path against a doublestar pattern ignoring case.
// An invalid pattern matches nothing.
func matchFold(pattern string, path string) bool {
	ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(path))
	return err == nil && ok
}
