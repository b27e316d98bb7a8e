// Package format provides shared string, size and time formatting utilities.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Ellipsis is appended to payloads cut by TruncateGraphemes.
const Ellipsis = "..."

// GraphemeLen returns the number of user-perceived characters in s.
// An emoji with modifiers or a ZWJ sequence counts as one.
func GraphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// TruncateGraphemes cuts s to budget grapheme clusters and appends Ellipsis
// when s is longer than budget. The result of a cut is always budget+3
// graphemes long. A non-positive budget returns s unchanged.
func TruncateGraphemes(s string, budget int) string {
	if budget <= 0 || GraphemeLen(s) <= budget {
		return s
	}

	var b strings.Builder
	gr := uniseg.NewGraphemes(s)
	for n := 0; n < budget && gr.Next(); n++ {
		b.WriteString(gr.Str())
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// UniqueStrings returns a deduplicated slice of strings.
// The order of first occurrence is preserved.
func UniqueStrings(input []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, s := range input {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}
