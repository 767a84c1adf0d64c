package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/ats-engine/internal/types"
)

// Score produces the match report for one candidate profile against one
// resolved job requirement. It is pure arithmetic over sets and numbers:
// the same inputs always yield an identical report, and it never fails for
// well-formed inputs.
//
// Component semantics:
//   - skills: fraction of required skills present, scaled by the skills
//     weight; an empty requirement grants full credit.
//   - experience: full weight when the candidate meets the minimum, linear
//     partial credit below it, always strictly under the full weight.
//   - education: full weight when the candidate's rank meets the required
//     rank, otherwise nothing.
//
// The composite score is rounded and clamped to [0,100].
func Score(profile types.ExtractedProfile, req ResolvedRequirement) types.MatchReport {
	matched, missing := partitionSkills(profile.Skills, req.RequiredSkills)

	w := req.Weights

	skillsScore := w.Skills
	if len(req.RequiredSkills) > 0 {
		skillsScore = w.Skills * float64(len(matched)) / float64(len(req.RequiredSkills))
	}

	experienceMatch := profile.ExperienceYears >= req.MinExperienceYears
	experienceScore := w.Experience
	if !experienceMatch {
		denominator := req.MinExperienceYears
		if denominator < 1 {
			denominator = 1
		}
		experienceScore = w.Experience * float64(profile.ExperienceYears) / float64(denominator)
		if experienceScore >= w.Experience {
			experienceScore = math.Nextafter(w.Experience, 0)
		}
		if experienceScore < 0 {
			experienceScore = 0
		}
	}

	educationMatch := profile.Rank >= req.RequiredEducationRank
	educationScore := 0.0
	if educationMatch {
		educationScore = w.Education
	}

	composite := int(math.Round(skillsScore + experienceScore + educationScore))
	if composite < 0 {
		composite = 0
	}
	if composite > 100 {
		composite = 100
	}

	return types.MatchReport{
		Extracted:       profile,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExperienceMatch: experienceMatch,
		EducationMatch:  educationMatch,
		SkillsScore:     skillsScore,
		ExperienceScore: experienceScore,
		EducationScore:  educationScore,
		Score:           composite,
	}
}

// partitionSkills splits the required skills into those the candidate has
// and those they lack. The two sets are disjoint and their union is exactly
// the required set; both come back sorted and non-nil.
func partitionSkills(candidateSkills, requiredSkills []string) (matched, missing []string) {
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[s] = true
	}

	matched = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0)
	for _, s := range requiredSkills {
		if have[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
