package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"SingleWord", "checkout", "checkout"},
		{"WhitespaceRunBecomesWildcard", "shows login form", "shows*login*form"},
		{"MultipleSpacesCollapse", "shows   login\tform", "shows*login*form"},
		{"EscapesBrackets", "case [edge]", "case*\\[edge\\]"},
		{"EscapesBraces", "a {b}", "a*\\{b\\}"},
		{"EscapesStarAndQuestion", "what? really*", "what\\?*really\\*"},
		{"EscapesBackslash", `a\b`, `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, globToken(tt.input))
		})
	}
}

func TestContainsName_IgnoresCaseAndSeparators(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		target   string
		expected bool
	}{
		{"KebabCase", "shows-login-form.zip", "shows login form", true},
		{"SnakeCase", "shows_login_form_trace.zip", "shows login form", true},
		{"PascalCaseWithSuffix", "ShowsLoginForm-retry1.zip", "shows login form", true},
		{"UnrelatedName", "trace.zip", "shows login form", false},
		{"DirectoryPath", "TestResults/shows-login-form", "shows login form", true},
		{"PartialWordsOnly", "shows-form.zip", "shows login form", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsName(tt.haystack, tt.target))
		})
	}
}
