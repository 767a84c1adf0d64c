// Package scoring combines an extracted candidate profile with a job's
// requirements into a weighted composite score and match report.
package scoring

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/skills"
	"github.com/jonathan/ats-engine/internal/types"
)

// ResolvedRequirement is the numeric form of a JobRequirement: free text
// fields parsed, skills canonicalized. It is the input Score operates on.
type ResolvedRequirement struct {
	RequiredSkills        []string
	MinExperienceYears    int
	RequiredEducationRank int
	Weights               types.Weights
}

// ResolveRequirement validates a raw job requirement and converts it for
// scoring. Required skills are canonicalized through the same alias index
// used on the candidate side; the minimum experience is parsed from free
// text with the same numeric heuristic applied to resumes, and the education
// requirement maps through the same rank table. A requirement that fails
// validation returns a *types.ValidationError and no resolved form.
func ResolveRequirement(req *types.JobRequirement, idx *skills.Index, now time.Time) (*ResolvedRequirement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(req.RequiredSkills))
	required := make([]string, 0, len(req.RequiredSkills))
	for _, raw := range req.RequiredSkills {
		canonical := idx.Canonicalize(raw)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		required = append(required, canonical)
	}
	sort.Strings(required)

	weights := types.DefaultWeights()
	if req.Weights != nil {
		weights = *req.Weights
	}

	return &ResolvedRequirement{
		RequiredSkills:        required,
		MinExperienceYears:    minExperience(req.Experience, now),
		RequiredEducationRank: extraction.Education(parsing.Normalize(req.Education)).Rank,
		Weights:               weights,
	}, nil
}

// smallIntPattern matches a standalone one- or two-digit number.
var smallIntPattern = regexp.MustCompile(`\b\d{1,2}\b`)

// minExperience parses the minimum-experience requirement from free text.
// "3+ years of Go" resolves through the resume heuristic; requirements that
// state a bare number ("minimum 3") fall back to the largest small integer
// mentioned. Absent both, there is no experience requirement.
func minExperience(freeText string, now time.Time) int {
	if years := extraction.ExperienceYears(freeText, now); years > 0 {
		return years
	}
	best := 0
	for _, m := range smallIntPattern.FindAllString(freeText, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best
}
