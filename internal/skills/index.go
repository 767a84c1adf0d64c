// Package skills provides the alias index: an immutable mapping between skill
// spelling variants and their canonical names, built once at process start.
package skills

import (
	"sort"

	"github.com/jonathan/ats-engine/internal/parsing"
)

// AliasEntry declares one canonical skill name and its accepted spelling
// variants. The canonical spelling itself is always treated as a variant.
type AliasEntry struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

// Index resolves any skill spelling to a single canonical name. It is
// read-only after construction and safe for concurrent use without locking.
type Index struct {
	forward map[string][]string // canonical -> normalized variants
	reverse map[string]string   // normalized variant -> canonical
}

// NewIndex builds an Index from a flat skill dictionary and an alias table.
// All names are normalized and deduplicated. Dictionary skills without an
// alias entry are their own canonical form.
func NewIndex(dictionary []string, aliases []AliasEntry) *Index {
	idx := &Index{
		forward: make(map[string][]string),
		reverse: make(map[string]string),
	}

	for _, entry := range aliases {
		canonical := parsing.Normalize(entry.Canonical)
		if canonical == "" {
			continue
		}
		idx.addVariant(canonical, canonical)
		for _, variant := range entry.Variants {
			idx.addVariant(canonical, parsing.Normalize(variant))
		}
	}

	for _, skill := range dictionary {
		canonical := parsing.Normalize(skill)
		if canonical == "" {
			continue
		}
		// Skip skills already claimed as a variant of an alias family.
		if _, exists := idx.reverse[canonical]; exists {
			continue
		}
		idx.addVariant(canonical, canonical)
	}

	return idx
}

// addVariant records variant under canonical in both directions. The first
// canonical to claim a variant wins; later claims are ignored.
func (idx *Index) addVariant(canonical, variant string) {
	if variant == "" {
		return
	}
	if _, exists := idx.reverse[variant]; exists {
		return
	}
	idx.reverse[variant] = canonical
	idx.forward[canonical] = append(idx.forward[canonical], variant)
}

// Canonicalize resolves a raw skill spelling to its canonical name. Unknown
// skills canonicalize to their own normalized form, so future dictionary
// entries can match reports produced before the entry existed.
// Canonicalize is idempotent.
func (idx *Index) Canonicalize(raw string) string {
	normalized := parsing.Normalize(raw)
	if canonical, ok := idx.reverse[normalized]; ok {
		return canonical
	}
	return normalized
}

// Canonicals returns every canonical skill name in the index, sorted.
func (idx *Index) Canonicals() []string {
	out := make([]string, 0, len(idx.forward))
	for canonical := range idx.forward {
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out
}

// Variants returns the normalized spelling variants of a canonical skill,
// including the canonical spelling itself. The returned slice is a copy.
func (idx *Index) Variants(canonical string) []string {
	variants, ok := idx.forward[parsing.Normalize(canonical)]
	if !ok {
		return nil
	}
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}

// Size returns the number of canonical skills in the index.
func (idx *Index) Size() int {
	return len(idx.forward)
}
