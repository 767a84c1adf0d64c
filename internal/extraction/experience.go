package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// explicitYearsPattern finds statements like "5 years", "10+ yrs" or
	// "3 yr". Two digits at most: no resume claims a three-digit tenure.
	explicitYearsPattern = regexp.MustCompile(`\b(\d{1,2})\s*\+?\s*(?:years|yrs|yr)\b`)

	// dateRangePattern finds YYYY-YYYY and YYYY-present/current spans,
	// accepting hyphen, en dash and em dash separators.
	dateRangePattern = regexp.MustCompile(`\b(\d{4})\s*[-\x{2013}\x{2014}]\s*(\d{4}|present|current)\b`)
)

// ExperienceYears estimates total years of experience from raw resume text
// using a two-tier heuristic, in priority order:
//
//  1. Explicit "<N> years" mentions: return the maximum N. Resumes often
//     state experience per section; the headline number is the largest.
//  2. Date ranges "YYYY-YYYY" or "YYYY-present": return the maximum span,
//     substituting now's calendar year for "present"/"current".
//
// Returns 0 when neither tier matches. The result is never negative.
// The clock is injected so that "present" resolves deterministically in tests.
func ExperienceYears(rawText string, now time.Time) int {
	text := strings.ToLower(rawText)

	if years, ok := maxExplicitYears(text); ok {
		return years
	}
	if years, ok := maxDateRangeSpan(text, now.Year()); ok {
		return years
	}
	return 0
}

func maxExplicitYears(text string) (int, bool) {
	best := 0
	found := false
	for _, m := range explicitYearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = true
		if n > best {
			best = n
		}
	}
	return best, found
}

func maxDateRangeSpan(text string, currentYear int) (int, bool) {
	best := 0
	found := false
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if m[2] != "present" && m[2] != "current" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		found = true
		span := end - start
		if span < 0 {
			span = 0
		}
		if span > best {
			best = span
		}
	}
	return best, found
}
