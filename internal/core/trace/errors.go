package trace

import "errors"

// Every abort path of a resolve/launch invocation maps to exactly one of
// these sentinel conditions. Nothing is retried; callers surface a single
// user-facing message per error.
var (
	// ErrInvalidIdentifier signals an empty test name after normalization.
	// Raised before any filesystem access.
	ErrInvalidIdentifier = errors.New("test name is empty")

	// ErrAmbiguousWorkspace signals that no workspace root could be
	// determined for the invocation.
	ErrAmbiguousWorkspace = errors.New("workspace root could not be determined")

	// ErrLauncherNotFound signals that no playwright.ps1 exists under the
	// configured build flavor.
	ErrLauncherNotFound = errors.New("playwright launcher script not found")

	// ErrArchiveNotFound signals that no trace archive matched the test name.
	ErrArchiveNotFound = errors.New("no trace archive matches the test name")

	// ErrToolUnavailable signals that the pwsh executable could not be
	// resolved on this host.
	ErrToolUnavailable = errors.New("pwsh executable not found")
)
