// ABOUTME: Text normalization helpers shared by extraction and rendering
// ABOUTME: Whitespace collapsing and rune-safe prefix truncation

package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseWhitespace replaces every run of whitespace with one space and trims the result
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate keeps at most max runes of s
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	i := 0
	for pos := range s {
		if i == max {
			return s[:pos]
		}
		i++
	}
	return s
}

// Length returns the number of runes in s
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
