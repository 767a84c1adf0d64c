package extraction

import (
	"sort"

	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/skills"
)

// Skills extracts the set of canonical skills mentioned in normalized resume
// text. A canonical skill is present when any of its variants appears as a
// bounded phrase. Output is membership only: no counts, no positions. The
// result is sorted, and every element is a canonical name from the index.
func Skills(normalizedText string, idx *skills.Index) []string {
	out := make([]string, 0)
	for _, canonical := range idx.Canonicals() {
		for _, variant := range idx.Variants(canonical) {
			if parsing.HasTerm(normalizedText, variant) {
				out = append(out, canonical)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
