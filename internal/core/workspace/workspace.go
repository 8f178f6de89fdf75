package workspace

import (
	"path/filepath"
	"strings"

	"github.com/fomox/tracescout/internal/core/trace"
)

// PickRoot selects the single workspace root used for an invocation. When
// origin is non-empty and lies inside one of the configured roots, that root
// wins; otherwise the first configured root is used. There is no multi-root
// fan-out.
func PickRoot(roots []string, origin string) (string, error) {
	if len(roots) == 0 {
		return "", trace.ErrAmbiguousWorkspace
	}

	if origin != "" {
		for _, root := range roots {
			if containsPath(root, origin) {
				return root, nil
			}
		}
	}

	return roots[0], nil
}

// containsPath reports whether candidate lies under root.
func containsPath(root, candidate string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absCandidate, err := filepath.Abs(candidate)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(absRoot, absCandidate)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
