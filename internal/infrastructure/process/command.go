package process

import (
	"fmt"
	"os"
	"path/filepath"
)

// Command represents one external viewer invocation: executable, argv and
// working directory. It is argv-based; nothing is ever passed through a
// shell, so paths with spaces or quoting hazards stay intact.
type Command struct {
	executable string
	args       []string
	workingDir string
}

// NewCommand creates a new Command value object
func NewCommand(executable string, args []string, workingDir string) (Command, error) {
	if executable == "" {
		return Command{}, fmt.Errorf("executable cannot be empty")
	}

	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			workingDir = "."
		}
	}
	if !filepath.IsAbs(workingDir) {
		if abs, err := filepath.Abs(workingDir); err == nil {
			workingDir = abs
		}
	}

	return Command{
		executable: executable,
		args:       append([]string(nil), args...), // Copy slice
		workingDir: workingDir,
	}, nil
}

// Executable returns the command executable
func (c Command) Executable() string {
	return c.executable
}

// Args returns a copy of the command arguments
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// WorkingDir returns the command working directory
func (c Command) WorkingDir() string {
	return c.workingDir
}

// String returns a printable representation for status output.
func (c Command) String() string {
	out := c.executable
	for _, arg := range c.args {
		out += " " + arg
	}
	return out
}
