package trace

import "strings"

// TestIdentifier is a value object identifying the test whose trace should be
// opened. The name is normalized on construction: internal whitespace runs are
// collapsed to single spaces and surrounding whitespace is trimmed.
type TestIdentifier struct {
	name   string
	origin string
}

// NewTestIdentifier creates a TestIdentifier with validation. origin is the
// path of the file the test lives in and may be empty.
func NewTestIdentifier(rawName string, origin string) (TestIdentifier, error) {
	name := strings.Join(strings.Fields(rawName), " ")
	if name == "" {
		return TestIdentifier{}, ErrInvalidIdentifier
	}

	return TestIdentifier{
		name:   name,
		origin: origin,
	}, nil
}

// Name returns the normalized test name.
func (t TestIdentifier) Name() string {
	return t.name
}

// Origin returns the path of the file the test was declared in, if known.
func (t TestIdentifier) Origin() string {
	return t.origin
}

// HasOrigin reports whether the identifier carries an origin location.
func (t TestIdentifier) HasOrigin() bool {
	return t.origin != ""
}

// String implements the Stringer interface
func (t TestIdentifier) String() string {
	return t.name
}

// ResolvedPair holds the two artifact paths needed to open a trace: the
// build-output launcher script and the trace archive itself.
type ResolvedPair struct {
	LauncherScript string
	TraceArchive   string
}
