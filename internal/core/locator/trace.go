package locator

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fomox/tracescout/internal/core/ports"
	"github.com/fomox/tracescout/internal/core/trace"
)

// Strategy base scores and bonuses. The constants are the ranking contract:
// filename matches are stronger evidence than directory matches, and the
// canonical runner layout (a trace.zip inside a directory named after the
// test) beats incidental matches found elsewhere in the tree.
const (
	scoreFilenameOnly = 100
	scorePathOnly     = 100
	scoreBothFilename = 70
	scoreBothPath     = 50

	bonusCanonicalTrace = 30
	bonusKnownDirectory = 10
)

// canonicalTraceName is the archive name the Playwright runner emits inside
// per-test output directories.
const canonicalTraceName = "trace.zip"

// knownDirectorySegments are path segments that mark runner-generated output
// trees. Candidates under them outrank stray archives with similar names,
// such as fixtures or documentation samples.
var knownDirectorySegments = []string{"bin", "testresults", "playwright"}

// candidate is a transient per-search value; candidates are recomputed on
// every invocation and never persisted.
type candidate struct {
	path    string
	score   int
	modTime time.Time
}

// TraceLocator finds the trace archive matching a test name among all
// candidate files under a workspace root.
type TraceLocator struct {
	searcher ports.FileSearcher
}

// NewTraceLocator creates a TraceLocator backed by the given searcher.
func NewTraceLocator(searcher ports.FileSearcher) *TraceLocator {
	return &TraceLocator{searcher: searcher}
}

// Locate returns the best-matching archive path for the normalized test
// name, or trace.ErrArchiveNotFound when nothing matches. extraPatterns are
// additional user-configured globs unioned with the built-in candidate set.
func (l *TraceLocator) Locate(ctx context.Context, root string, name string, strategy MatchStrategy, extraPatterns []string, maxResults int) (string, error) {
	patterns := l.buildPatterns(name, extraPatterns)

	paths, err := l.enumerateAll(ctx, root, patterns, maxResults)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", trace.ErrArchiveNotFound
	}

	candidates := make([]candidate, 0, len(paths))
	for _, path := range paths {
		candidates = append(candidates, l.score(path, name, strategy))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].modTime.After(candidates[j].modTime)
	})

	return candidates[0].path, nil
}

// buildPatterns derives the candidate glob set for a test name, unioned with
// the configured extra patterns and deduplicated preserving first-seen order.
func (l *TraceLocator) buildPatterns(name string, extraPatterns []string) []string {
	token := globToken(name)
	all := append([]string{
		"**/" + token + ".zip",
		"**/" + token + "*.zip",
		"**/*" + token + "*/" + canonicalTraceName,
		"**/*" + token + "*/*trace*.zip",
	}, extraPatterns...)

	seen := make(map[string]bool, len(all))
	patterns := make([]string, 0, len(all))
	for _, p := range all {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
	}
	return patterns
}

// enumerateAll fans out one enumeration per pattern and merges the results in
// pattern order, deduplicating by case-insensitive full path. Each pattern
// gets an equal share of the result budget so no single pattern can exhaust
// it. The merge is deterministic regardless of completion order.
func (l *TraceLocator) enumerateAll(ctx context.Context, root string, patterns []string, maxResults int) ([]string, error) {
	perPattern := (maxResults + len(patterns) - 1) / len(patterns)

	type result struct {
		paths []string
		err   error
	}
	results := make([]result, len(patterns))

	done := make(chan int, len(patterns))
	for i, pattern := range patterns {
		go func(i int, pattern string) {
			paths, err := l.searcher.Enumerate(ctx, root, pattern, dependencyCacheExclude, perPattern)
			results[i] = result{paths: paths, err: err}
			done <- i
		}(i, pattern)
	}
	for range patterns {
		<-done
	}

	seen := make(map[string]bool)
	var merged []string
	for i, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("enumerating pattern %q: %w", patterns[i], r.err)
		}
		for _, path := range r.paths {
			key := strings.ToLower(path)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, path)
		}
	}
	return merged, nil
}

// score computes a candidate's rank for the given strategy. The filename and
// the directory portion of the path are checked independently; bonuses are
// additive on top of the strategy base score. The modification time is the
// tiebreak key, read best-effort: an unreadable file keeps the zero time and
// stays eligible.
func (l *TraceLocator) score(path string, name string, strategy MatchStrategy) candidate {
	filename := filepath.Base(path)
	dir := filepath.Dir(path)

	filenameMatch := containsName(filename, name)
	pathMatch := containsName(dir, name)

	score := 0
	switch strategy {
	case MatchFilenameOnly:
		if filenameMatch {
			score += scoreFilenameOnly
		}
	case MatchPathContains:
		if pathMatch {
			score += scorePathOnly
		}
	default:
		if filenameMatch {
			score += scoreBothFilename
		}
		if pathMatch {
			score += scoreBothPath
		}
	}

	if pathMatch && strings.EqualFold(filename, canonicalTraceName) {
		score += bonusCanonicalTrace
	}
	if hasKnownDirectorySegment(dir) {
		score += bonusKnownDirectory
	}

	modTime, err := l.searcher.ModTime(path)
	if err != nil {
		modTime = time.Time{}
	}

	return candidate{path: path, score: score, modTime: modTime}
}

// hasKnownDirectorySegment reports whether any directory segment of dir is
// one of the runner-output markers.
func hasKnownDirectorySegment(dir string) bool {
	for _, segment := range strings.FieldsFunc(filepath.ToSlash(dir), func(r rune) bool { return r == '/' }) {
		for _, known := range knownDirectorySegments {
			if strings.EqualFold(segment, known) {
				return true
			}
		}
	}
	return false
}
