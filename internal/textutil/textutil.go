// Package textutil holds the whitespace helpers shared by the properties parser.
package textutil

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is whitespace under Unicode rules.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// TrimLeading removes leading whitespace from s.
func TrimLeading(s string) string {
	return strings.TrimLeftFunc(s, IsSpace)
}

// TrimTrailing removes trailing whitespace from s.
func TrimTrailing(s string) string {
	return strings.TrimRightFunc(s, IsSpace)
}

// Trim removes trailing and then leading whitespace from s.
func Trim(s string) string {
	return TrimLeading(TrimTrailing(s))
}
