package locator

import (
	"fmt"
	"strings"
)

// Flavor is the build configuration whose output tree is searched for the
// launcher script.
type Flavor string

const (
	FlavorDebug   Flavor = "Debug"
	FlavorRelease Flavor = "Release"
)

// NewFlavor creates a Flavor with validation. Input is case-insensitive.
func NewFlavor(value string) (Flavor, error) {
	switch {
	case strings.EqualFold(value, string(FlavorDebug)):
		return FlavorDebug, nil
	case strings.EqualFold(value, string(FlavorRelease)):
		return FlavorRelease, nil
	default:
		return "", fmt.Errorf("invalid build flavor: %q (expected Debug or Release)", value)
	}
}

// String returns the string representation of Flavor
func (f Flavor) String() string {
	return string(f)
}

// MatchStrategy selects which parts of a candidate path participate in
// name matching.
type MatchStrategy string

const (
	// MatchFilenameOnly scores only filename matches.
	MatchFilenameOnly MatchStrategy = "filename"
	// MatchPathContains scores only directory-path matches.
	MatchPathContains MatchStrategy = "path"
	// MatchBoth scores both, weighting filename evidence higher.
	MatchBoth MatchStrategy = "both"
)

// NewMatchStrategy creates a MatchStrategy with validation.
func NewMatchStrategy(value string) (MatchStrategy, error) {
	switch MatchStrategy(value) {
	case MatchFilenameOnly, MatchPathContains, MatchBoth:
		return MatchStrategy(value), nil
	default:
		return "", fmt.Errorf("invalid match strategy: %q (expected filename, path or both)", value)
	}
}

// String returns the string representation of MatchStrategy
func (m MatchStrategy) String() string {
	return string(m)
}

// Config carries the user-tunable search parameters. It is read-only for the
// locators; both treat it as supplied from the outside.
type Config struct {
	Flavor        Flavor
	MaxResults    int
	Strategy      MatchStrategy
	ExtraPatterns []string
}

// DefaultConfig returns the search parameters used when nothing is
// configured.
func DefaultConfig() Config {
	return Config{
		Flavor:     FlavorDebug,
		MaxResults: 2000,
		Strategy:   MatchBoth,
	}
}

// Validate checks the configuration for values the locators cannot work with.
func (c Config) Validate() error {
	if _, err := NewFlavor(string(c.Flavor)); err != nil {
		return err
	}
	if _, err := NewMatchStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max results must be positive, got %d", c.MaxResults)
	}
	return nil
}
