package locator

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/fomox/tracescout/internal/core/ports"
	"github.com/fomox/tracescout/internal/core/trace"
)

// launcherScriptName is the helper script Playwright for .NET emits next to
// the build output; it boots the trace viewer.
const launcherScriptName = "playwright.ps1"

// runtimeVersionPattern matches a target-runtime directory name such as
// "net8.0" or "net8".
var runtimeVersionPattern = regexp.MustCompile(`(?i)net(\d+)(?:\.(\d+))?`)

// BuildLocator finds the launcher script belonging to the newest runtime
// version directory under a build flavor's output tree.
type BuildLocator struct {
	searcher ports.FileSearcher
}

// NewBuildLocator creates a BuildLocator backed by the given searcher.
func NewBuildLocator(searcher ports.FileSearcher) *BuildLocator {
	return &BuildLocator{searcher: searcher}
}

// Locate returns the path of the launcher script for the given flavor, or
// trace.ErrLauncherNotFound when the flavor's output tree carries none.
// Multiple installed runtime versions can coexist in build output; the
// highest major.minor wins, with the shortest full path as tiebreak.
func (l *BuildLocator) Locate(ctx context.Context, root string, flavor Flavor, maxResults int) (string, error) {
	include := fmt.Sprintf("**/bin/%s/*/%s", flavor, launcherScriptName)

	matches, err := l.searcher.Enumerate(ctx, root, include, dependencyCacheExclude, maxResults)
	if err != nil {
		return "", fmt.Errorf("enumerating launcher scripts: %w", err)
	}
	if len(matches) == 0 {
		return "", trace.ErrLauncherNotFound
	}

	type scored struct {
		path  string
		score int
	}
	candidates := make([]scored, 0, len(matches))
	for _, path := range matches {
		candidates = append(candidates, scored{
			path:  path,
			score: runtimeVersionScore(filepath.Base(filepath.Dir(path))),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return len(candidates[i].path) < len(candidates[j].path)
	})

	return candidates[0].path, nil
}

// runtimeVersionScore ranks a runtime directory name as major*100 + minor.
// Directories carrying no recognizable version score zero and lose to any
// versioned one.
func runtimeVersionScore(dir string) int {
	m := runtimeVersionPattern.FindStringSubmatch(dir)
	if m == nil {
		return 0
	}
	major, _ := strconv.Atoi(m[1])
	minor := 0
	if m[2] != "" {
		minor, _ = strconv.Atoi(m[2])
	}
	return major*100 + minor
}
