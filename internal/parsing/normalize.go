// Package parsing provides the canonical text normalization shared by every
// matching operation in the engine. Skills, education phrases and requirement
// text all pass through Normalize before matching so that word-boundary
// checks behave identically everywhere.
package parsing

import "strings"

// Normalize lowercases text and reduces it to the matching alphabet:
// a-z, 0-9, '+', '#' and '.'. Every other character becomes a space, which
// keeps tokens like "c++", "c#" and "node.js" intact while stripping
// punctuation. Runs of whitespace collapse to a single space and the result
// is trimmed.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	// Fields collapses consecutive whitespace and drops leading/trailing runs.
	return strings.Join(strings.Fields(b.String()), " ")
}

// HasTerm reports whether term occurs in normalizedText as a whole phrase,
// bounded by the string edges or spaces on both sides. A hit inside a longer
// token does not count, so "java" never matches inside "javascript".
// Both arguments are expected to already be in Normalize form.
func HasTerm(normalizedText, term string) bool {
	if normalizedText == "" || term == "" {
		return false
	}
	padded := " " + normalizedText + " "
	return strings.Contains(padded, " "+term+" ")
}
