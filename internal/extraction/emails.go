// Package extraction provides the pure signal extractors that turn resume
// text into an ExtractedProfile. Each extractor is independent, side-effect
// free and safe to run concurrently; a missing signal yields a zero value,
// never an error, because resumes are unstructured and partial extraction is
// expected and scoreable.
package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// emailPattern matches local@domain.tld shapes. It runs over raw text since
// normalization strips the '@' and '-' characters emails depend on.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Emails extracts the set of email addresses mentioned in raw resume text.
// Addresses are lowercased and deduplicated; the result is sorted.
func Emails(rawText string) []string {
	matches := emailPattern.FindAllString(rawText, -1)

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		lower := strings.ToLower(m)
		if !seen[lower] {
			seen[lower] = true
			out = append(out, lower)
		}
	}
	sort.Strings(out)
	return out
}
