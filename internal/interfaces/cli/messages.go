package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fomox/tracescout/internal/core/trace"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
)

// userError pairs an error with the single message shown for it. Every abort
// path produces exactly one such message.
type userError struct {
	message string
	err     error
}

func (e *userError) Error() string {
	return e.message
}

func (e *userError) Unwrap() error {
	return e.err
}

// describeFailure maps an error from the resolve/launch flow to its
// user-facing message. flavor and testName supply the context the messages
// name.
func describeFailure(err error, flavor string, testName string) error {
	switch {
	case errors.Is(err, trace.ErrAmbiguousWorkspace):
		return &userError{
			message: "No workspace root could be determined. Pass --root or set TRACESCOUT_ROOTS.",
			err:     err,
		}
	case errors.Is(err, trace.ErrInvalidIdentifier):
		return &userError{
			message: "Test name is empty. Pass the test title exactly as the runner reports it.",
			err:     err,
		}
	case errors.Is(err, trace.ErrLauncherNotFound):
		return &userError{
			message: fmt.Sprintf("No playwright.ps1 found under bin/%s/net*/. Build the test project for the %s flavor first, or switch flavors with --flavor.", flavor, flavor),
			err:     err,
		}
	case errors.Is(err, trace.ErrArchiveNotFound):
		return &userError{
			message: fmt.Sprintf("No trace archive matches %q. Run the test with tracing enabled, or widen the search with --pattern.", testName),
			err:     err,
		}
	case errors.Is(err, trace.ErrToolUnavailable):
		return &userError{
			message: "PowerShell (pwsh) was not found on this machine. Install PowerShell 7+ or add pwsh to PATH.",
			err:     err,
		}
	default:
		return &userError{
			message: fmt.Sprintf("Failed to open trace: %v", err),
			err:     err,
		}
	}
}

// renderError styles the message for terminal output.
func renderError(err error) string {
	var ue *userError
	if errors.As(err, &ue) {
		return errorStyle.Render("Error: ") + ue.message
	}
	return errorStyle.Render("Error: ") + err.Error()
}
