package process

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_RequiresExecutable(t *testing.T) {
	_, err := NewCommand("", []string{"a"}, "/tmp")

	assert.Error(t, err)
}

func TestNewCommand_CopiesArgs(t *testing.T) {
	args := []string{"script.ps1", "show-trace", "trace.zip"}
	cmd, err := NewCommand("pwsh", args, "/tmp")
	require.NoError(t, err)

	args[0] = "mutated"

	assert.Equal(t, []string{"script.ps1", "show-trace", "trace.zip"}, cmd.Args())
}

func TestNewCommand_ResolvesWorkingDir(t *testing.T) {
	cmd, err := NewCommand("pwsh", nil, "relative/dir")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cmd.WorkingDir()))
}

func TestNewCommand_DefaultsWorkingDirToCwd(t *testing.T) {
	cmd, err := NewCommand("pwsh", nil, "")
	require.NoError(t, err)

	assert.NotEmpty(t, cmd.WorkingDir())
}

func TestCommand_String(t *testing.T) {
	cmd, err := NewCommand("pwsh", []string{"script.ps1", "show-trace", "trace.zip"}, "/tmp")
	require.NoError(t, err)

	assert.Equal(t, "pwsh script.ps1 show-trace trace.zip", cmd.String())
}
