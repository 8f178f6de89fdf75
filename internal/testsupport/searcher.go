// Package testsupport provides in-memory doubles for the filesystem ports so
// locator and command behavior can be tested against fake directory trees.
package testsupport

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// MemSearcher is an in-memory FileSearcher over fake directory trees, one per
// root. It mirrors the port contract: case-insensitive glob matching, an
// exclusion filter and a result cap. EnumerateCalls counts invocations so
// tests can assert that early aborts touch no filesystem.
type MemSearcher struct {
	trees        map[string]map[string]time.Time
	statFailures map[string]bool

	mu             sync.Mutex // guards EnumerateCalls; enumerations run concurrently
	EnumerateCalls int
}

// NewMemSearcher creates an empty fake tree set.
func NewMemSearcher() *MemSearcher {
	return &MemSearcher{
		trees:        make(map[string]map[string]time.Time),
		statFailures: make(map[string]bool),
	}
}

// Add places a file at the root-relative slash path rel with the given
// modification time.
func (m *MemSearcher) Add(root, rel string, modTime time.Time) *MemSearcher {
	if m.trees[root] == nil {
		m.trees[root] = make(map[string]time.Time)
	}
	m.trees[root][rel] = modTime
	return m
}

// AddUnstattable places a file whose modification time cannot be read.
func (m *MemSearcher) AddUnstattable(root, rel string) *MemSearcher {
	m.Add(root, rel, time.Time{})
	m.statFailures[path.Join(root, rel)] = true
	return m
}

// Enumerate implements ports.FileSearcher.
func (m *MemSearcher) Enumerate(ctx context.Context, root, include, exclude string, limit int) ([]string, error) {
	m.mu.Lock()
	m.EnumerateCalls++
	m.mu.Unlock()

	if limit <= 0 {
		return nil, nil
	}

	rels := make([]string, 0, len(m.trees[root]))
	for rel := range m.trees[root] {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	var matches []string
	for _, rel := range rels {
		if exclude != "" && matchFold(exclude, rel) {
			continue
		}
		if !matchFold(include, rel) {
			continue
		}
		matches = append(matches, path.Join(root, rel))
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// ModTime implements ports.FileSearcher.
func (m *MemSearcher) ModTime(p string) (time.Time, error) {
	if m.statFailures[p] {
		return time.Time{}, fmt.Errorf("stat %s: permission denied", p)
	}
	for root, tree := range m.trees {
		for rel, modTime := range tree {
			if path.Join(root, rel) == p {
				return modTime, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("stat %s: no such file", p)
}

// Exists implements ports.FileSearcher.
func (m *MemSearcher) Exists(p string) bool {
	for root, tree := range m.trees {
		for rel := range tree {
			if path.Join(root, rel) == p {
				return true
			}
		}
	}
	return false
}

func matchFold(pattern, p string) bool {
	ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(p))
	return err == nil && ok
}
