package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fomox/tracescout/internal/core/ports"
	"github.com/fomox/tracescout/internal/core/trace"
	"github.com/fomox/tracescout/internal/testsupport"
)

// stubLauncher records launch requests instead of spawning pwsh.
type stubLauncher struct {
	launched []trace.ResolvedPair
	workDirs []string
	err      error
}

func (s *stubLauncher) Launch(ctx context.Context, pair trace.ResolvedPair, workDir string) error {
	s.launched = append(s.launched, pair)
	s.workDirs = append(s.workDirs, workDir)
	return s.err
}

// withStubs swaps the OS-backed seams for the duration of a test.
func withStubs(t *testing.T, searcher *testsupport.MemSearcher, launcher *stubLauncher) {
	t.Helper()
	prevSearcher, prevLauncher := newSearcher, newLauncher
	newSearcher = func() ports.FileSearcher { return searcher }
	newLauncher = func() ports.ViewerLauncher { return launcher }
	t.Cleanup(func() {
		newSearcher = prevSearcher
		newLauncher = prevLauncher
	})
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func shopTree() *testsupport.MemSearcher {
	return testsupport.NewMemSearcher().
		Add("/src/shop", "tests/bin/Debug/net8.0/playwright.ps1", time.Time{}).
		Add("/src/shop", "tests/TestResults/checkout-succeeds/trace.zip", time.Unix(1700000000, 0))
}

func TestOpenCommand_LaunchesViewer(t *testing.T) {
	isolateConfig(t)
	launcher := &stubLauncher{}
	withStubs(t, shopTree(), launcher)

	out, err := runCommand(t, "open", "checkout succeeds", "--root", "/src/shop")

	require.NoError(t, err)
	require.Len(t, launcher.launched, 1)
	assert.Equal(t, "/src/shop/tests/bin/Debug/net8.0/playwright.ps1", launcher.launched[0].LauncherScript)
	assert.Equal(t, "/src/shop/tests/TestResults/checkout-succeeds/trace.zip", launcher.launched[0].TraceArchive)
	assert.Equal(t, []string{"/src/shop"}, launcher.workDirs)
	assert.Contains(t, out, "playwright.ps1")
	assert.Contains(t, out, "trace.zip")
}

func TestOpenCommand_MultiWordNameWithoutQuotes(t *testing.T) {
	isolateConfig(t)
	launcher := &stubLauncher{}
	withStubs(t, shopTree(), launcher)

	_, err := runCommand(t, "open", "checkout", "succeeds", "--root", "/src/shop")

	require.NoError(t, err)
	assert.Len(t, launcher.launched, 1)
}

func TestOpenCommand_NoWorkspace(t *testing.T) {
	isolateConfig(t)
	withStubs(t, testsupport.NewMemSearcher(), &stubLauncher{})

	_, err := runCommand(t, "open", "checkout succeeds")

	assert.ErrorIs(t, err, trace.ErrAmbiguousWorkspace)
	assert.Contains(t, renderError(err), "workspace root")
}

func TestOpenCommand_ArchiveMissing(t *testing.T) {
	isolateConfig(t)
	searcher := testsupport.NewMemSearcher().
		Add("/src/shop", "tests/bin/Debug/net8.0/playwright.ps1", time.Time{})
	launcher := &stubLauncher{}
	withStubs(t, searcher, launcher)

	_, err := runCommand(t, "open", "checkout succeeds", "--root", "/src/shop")

	assert.ErrorIs(t, err, trace.ErrArchiveNotFound)
	assert.Contains(t, renderError(err), `"checkout succeeds"`)
	assert.Empty(t, launcher.launched, "nothing may be launched when resolution fails")
}

func TestOpenCommand_ToolUnavailable(t *testing.T) {
	isolateConfig(t)
	launcher := &stubLauncher{err: trace.ErrToolUnavailable}
	withStubs(t, shopTree(), launcher)

	_, err := runCommand(t, "open", "checkout succeeds", "--root", "/src/shop")

	assert.ErrorIs(t, err, trace.ErrToolUnavailable)
	assert.Contains(t, renderError(err), "PowerShell")
}

func TestResolveCommand_PrintsBothPaths(t *testing.T) {
	isolateConfig(t)
	launcher := &stubLauncher{}
	withStubs(t, shopTree(), launcher)

	out, err := runCommand(t, "resolve", "checkout succeeds", "--root", "/src/shop")

	require.NoError(t, err)
	assert.Contains(t, out, "/src/shop/tests/bin/Debug/net8.0/playwright.ps1\n")
	assert.Contains(t, out, "/src/shop/tests/TestResults/checkout-succeeds/trace.zip\n")
	assert.Empty(t, launcher.launched, "resolve must not launch the viewer")
}

func TestConfigCommand_ShowsEffectiveConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TRACESCOUT_FLAVOR", "Release")

	out, err := runCommand(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Release")
	assert.Contains(t, out, "2000")
}
