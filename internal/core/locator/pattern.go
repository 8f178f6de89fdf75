package locator

import (
	"strings"
	"unicode"
)

// dependencyCacheExclude suppresses the conventional dependency cache that
// browser-automation projects carry; traces never live there and the
// directory dominates enumeration time on large trees.
const dependencyCacheExclude = "**/node_modules/**"

// globToken turns a normalized test name into a glob-safe token: glob
// metacharacters are escaped and each internal whitespace run becomes a
// wildcard, so "shows login form" matches "shows-login-form" as well as
// "shows_login_form_trace".
func globToken(name string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('*')
				inSpace = true
			}
			continue
		}
		inSpace = false
		switch r {
		case '\\', '{', '}', '[', ']', '?', '*':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldName reduces a string to lowercase alphanumerics so that containment
// checks ignore case and the arbitrary separators test runners put between
// name words ("Shows Login Form" vs "shows-login-form" vs "ShowsLoginForm").
func foldName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// containsName reports whether haystack contains name under folding.
func containsName(haystack, name string) bool {
	return strings.Contains(foldName(haystack), foldName(name))
}
