package extraction

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// phonePattern matches runs of at least nine digits and separators, with
	// an optional leading '+' and parentheses. It deliberately over-matches;
	// the post-filter below rejects the date-range lookalikes that resumes
	// are full of.
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d ()\-]{7,}\d`)

	// yearRangePattern recognizes NNNN-NNNN spans such as employment dates.
	yearRangePattern = regexp.MustCompile(`^\d{4}\s*-\s*\d{4}$`)

	bareYearPattern = regexp.MustCompile(`^\d{4}$`)
)

// Phones extracts phone-number candidates from raw resume text. Matches that
// look like a year range, a bare four-digit number, or that carry a
// double-dash artifact are dropped: the filter trades a few missed numbers
// for far fewer date ranges reported as phones. The result is deduplicated
// and sorted.
func Phones(rawText string) []string {
	matches := phonePattern.FindAllString(rawText, -1)

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		candidate := strings.TrimSpace(m)
		if yearRangePattern.MatchString(candidate) || bareYearPattern.MatchString(candidate) {
			continue
		}
		if strings.Contains(candidate, "--") {
			continue
		}
		if digitCount(candidate) < 9 {
			continue
		}
		if !seen[candidate] {
			seen[candidate] = true
			out = append(out, candidate)
		}
	}
	sort.Strings(out)
	return out
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
