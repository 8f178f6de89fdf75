package process

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fomox/tracescout/internal/core/trace"
)

// fakeFileInfo satisfies os.FileInfo for stat fakes.
type fakeFileInfo struct {
	dir bool
}

func (f fakeFileInfo) Name() string       { return "pwsh" }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0o755 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

func TestLauncher_ResolveTool(t *testing.T) {
	t.Run("PathHitWins", func(t *testing.T) {
		launcher := &Launcher{
			lookPath: func(name string) (string, error) { return "/usr/bin/" + name, nil },
			stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
			goos:     "linux",
		}

		path, err := launcher.ResolveTool()

		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/pwsh", path)
	})

	t.Run("FallsBackToKnownLocation", func(t *testing.T) {
		launcher := &Launcher{
			lookPath: func(string) (string, error) { return "", fmt.Errorf("not in PATH") },
			stat: func(path string) (os.FileInfo, error) {
				if path == "/snap/bin/pwsh" {
					return fakeFileInfo{}, nil
				}
				return nil, os.ErrNotExist
			},
			goos: "linux",
		}

		path, err := launcher.ResolveTool()

		require.NoError(t, err)
		assert.Equal(t, "/snap/bin/pwsh", path)
	})

	t.Run("DirectoryAtKnownLocationDoesNotCount", func(t *testing.T) {
		launcher := &Launcher{
			lookPath: func(string) (string, error) { return "", fmt.Errorf("not in PATH") },
			stat:     func(string) (os.FileInfo, error) { return fakeFileInfo{dir: true}, nil },
			goos:     "linux",
		}

		_, err := launcher.ResolveTool()

		assert.ErrorIs(t, err, trace.ErrToolUnavailable)
	})

	t.Run("NothingFoundIsToolUnavailable", func(t *testing.T) {
		launcher := &Launcher{
			lookPath: func(string) (string, error) { return "", fmt.Errorf("not in PATH") },
			stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
			goos:     "windows",
		}

		_, err := launcher.ResolveTool()

		assert.ErrorIs(t, err, trace.ErrToolUnavailable)
	})
}

func TestKnownToolLocations_PerPlatform(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
	}{
		{"windows", `C:\Program Files\PowerShell\7\pwsh.exe`},
		{"darwin", "/opt/homebrew/bin/pwsh"},
		{"linux", "/usr/bin/pwsh"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Contains(t, knownToolLocations(tt.goos), tt.expected)
		})
	}
}
