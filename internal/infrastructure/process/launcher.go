package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/fomox/tracescout/internal/core/trace"
)

// toolName is the PowerShell executable the launcher script runs under.
const toolName = "pwsh"

// Launcher resolves the PowerShell executable and runs the launcher script
// against a trace archive. Probing functions are injectable for tests.
type Launcher struct {
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
	goos     string
}

// NewLauncher creates a Launcher probing the real host.
func NewLauncher() *Launcher {
	return &Launcher{
		lookPath: exec.LookPath,
		stat:     os.Stat,
		goos:     runtime.GOOS,
	}
}

// ResolveTool finds the pwsh executable: PATH first, then the short list of
// known install locations for the platform. Failure is a distinct
// "tool not found" condition, not a search error.
func (l *Launcher) ResolveTool() (string, error) {
	if path, err := l.lookPath(toolName); err == nil {
		return path, nil
	}

	for _, path := range knownToolLocations(l.goos) {
		if info, err := l.stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", trace.ErrToolUnavailable
}

// Launch invokes the trace viewer: pwsh <launcherScript> show-trace
// <archive>, in the given working directory. Success is process exit zero;
// the viewer's own UI lifecycle is not tracked beyond that.
func (l *Launcher) Launch(ctx context.Context, pair trace.ResolvedPair, workDir string) error {
	tool, err := l.ResolveTool()
	if err != nil {
		return err
	}

	cmd, err := NewCommand(tool, []string{pair.LauncherScript, "show-trace", pair.TraceArchive}, workDir)
	if err != nil {
		return err
	}

	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)
	execCmd.Dir = cmd.WorkingDir()
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr

	if err := execCmd.Run(); err != nil {
		return fmt.Errorf("trace viewer failed: %w", err)
	}
	return nil
}

// knownToolLocations lists per-platform install paths probed when pwsh is
// not on PATH.
func knownToolLocations(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\Program Files\PowerShell\7\pwsh.exe`,
			`C:\Program Files (x86)\PowerShell\7\pwsh.exe`,
		}
	case "darwin":
		return []string{
			"/usr/local/bin/pwsh",
			"/opt/homebrew/bin/pwsh",
			"/usr/local/microsoft/powershell/7/pwsh",
		}
	default:
		return []string{
			"/usr/bin/pwsh",
			"/usr/local/bin/pwsh",
			"/opt/microsoft/powershell/7/pwsh",
			"/snap/bin/pwsh",
		}
	}
}
