package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/skills"
	"github.com/jonathan/ats-engine/internal/types"
)

var fixedNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func testIndex() *skills.Index {
	return skills.NewIndex(
		[]string{"python", "sql", "aws", "docker", "java"},
		[]skills.AliasEntry{
			{Canonical: "node.js", Variants: []string{"nodejs", "node js"}},
			{Canonical: "go", Variants: []string{"golang"}},
		},
	)
}

func profileWith(skillSet []string, years int, eduRank int) types.ExtractedProfile {
	return types.ExtractedProfile{
		Skills:          skillSet,
		Emails:          []string{},
		Phones:          []string{},
		ExperienceYears: years,
		EducationLevel:  types.EducationLevel{Rank: eduRank},
	}
}

func TestResolveRequirement(t *testing.T) {
	idx := testIndex()

	req := &types.JobRequirement{
		RequiredSkills: []string{"Python", "NodeJS", "Golang", "python"},
		Experience:     "3+ years of backend work",
		Education:      "Bachelor's degree or equivalent",
	}

	resolved, err := ResolveRequirement(req, idx, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "node.js", "python"}, resolved.RequiredSkills,
		"skills should be canonicalized, deduplicated and sorted")
	assert.Equal(t, 3, resolved.MinExperienceYears)
	assert.Equal(t, 3, resolved.RequiredEducationRank)
	assert.Equal(t, types.DefaultWeights(), resolved.Weights)
}

func TestResolveRequirementBareNumberExperience(t *testing.T) {
	resolved, err := ResolveRequirement(&types.JobRequirement{
		RequiredSkills: []string{"python"},
		Experience:     "minimum 5",
	}, testIndex(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 5, resolved.MinExperienceYears)
}

func TestResolveRequirementEmptyFreeText(t *testing.T) {
	resolved, err := ResolveRequirement(&types.JobRequirement{
		RequiredSkills: []string{},
	}, testIndex(), fixedNow)
	require.NoError(t, err)

	assert.Empty(t, resolved.RequiredSkills)
	assert.Zero(t, resolved.MinExperienceYears)
	assert.Zero(t, resolved.RequiredEducationRank)
}

func TestResolveRequirementCustomWeights(t *testing.T) {
	resolved, err := ResolveRequirement(&types.JobRequirement{
		RequiredSkills: []string{"python"},
		Weights:        &types.Weights{Skills: 60, Experience: 20, Education: 20},
	}, testIndex(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, types.Weights{Skills: 60, Experience: 20, Education: 20}, resolved.Weights)
}

func TestResolveRequirementValidation(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name string
		req  *types.JobRequirement
	}{
		{"Nil requirement", nil},
		{"Missing requiredSkills", &types.JobRequirement{Experience: "3 years"}},
		{"Blank skill name", &types.JobRequirement{RequiredSkills: []string{"python", "  "}}},
		{"Weights not summing to 100", &types.JobRequirement{
			RequiredSkills: []string{"python"},
			Weights:        &types.Weights{Skills: 50, Experience: 30, Education: 30},
		}},
		{"Negative weight", &types.JobRequirement{
			RequiredSkills: []string{"python"},
			Weights:        &types.Weights{Skills: 120, Experience: -10, Education: -10},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRequirement(tt.req, idx, fixedNow)
			require.Error(t, err)

			var vErr *types.ValidationError
			assert.ErrorAs(t, err, &vErr, "should surface as ValidationError")
		})
	}
}

func TestScorePartialSkillMatch(t *testing.T) {
	// Job requires [python, sql, aws]; candidate has [python, docker].
	req := ResolvedRequirement{
		RequiredSkills: []string{"aws", "python", "sql"},
		Weights:        types.DefaultWeights(),
	}
	profile := profileWith([]string{"docker", "python"}, 0, 0)

	report := Score(profile, req)

	assert.Equal(t, []string{"python"}, report.MatchedSkills)
	assert.Equal(t, []string{"aws", "sql"}, report.MissingSkills)
	assert.InDelta(t, 50.0/3.0, report.SkillsScore, 0.001)
}

func TestScoreEmptyRequiredSkillsFullCredit(t *testing.T) {
	req := ResolvedRequirement{RequiredSkills: []string{}, Weights: types.DefaultWeights()}

	for _, candidate := range [][]string{{}, {"python"}, {"go", "sql", "docker"}} {
		report := Score(profileWith(candidate, 0, 0), req)
		assert.Equal(t, 50.0, report.SkillsScore, "no requirement means full skills credit")
		assert.Empty(t, report.MatchedSkills)
		assert.Empty(t, report.MissingSkills)
	}
}

func TestScoreExperience(t *testing.T) {
	req := ResolvedRequirement{
		RequiredSkills:     []string{},
		MinExperienceYears: 6,
		Weights:            types.DefaultWeights(),
	}

	t.Run("Meets minimum", func(t *testing.T) {
		report := Score(profileWith(nil, 6, 0), req)
		assert.True(t, report.ExperienceMatch)
		assert.Equal(t, 30.0, report.ExperienceScore)
	})

	t.Run("Exceeds minimum", func(t *testing.T) {
		report := Score(profileWith(nil, 20, 0), req)
		assert.True(t, report.ExperienceMatch)
		assert.Equal(t, 30.0, report.ExperienceScore, "no bonus beyond full weight")
	})

	t.Run("Linear partial credit", func(t *testing.T) {
		report := Score(profileWith(nil, 3, 0), req)
		assert.False(t, report.ExperienceMatch)
		assert.InDelta(t, 15.0, report.ExperienceScore, 0.001)
	})

	t.Run("No experience", func(t *testing.T) {
		report := Score(profileWith(nil, 0, 0), req)
		assert.False(t, report.ExperienceMatch)
		assert.Equal(t, 0.0, report.ExperienceScore)
	})

	t.Run("No requirement always matches", func(t *testing.T) {
		report := Score(profileWith(nil, 0, 0), ResolvedRequirement{Weights: types.DefaultWeights()})
		assert.True(t, report.ExperienceMatch)
		assert.Equal(t, 30.0, report.ExperienceScore)
	})
}

func TestScoreEducation(t *testing.T) {
	req := ResolvedRequirement{
		RequiredSkills:        []string{},
		RequiredEducationRank: 3,
		Weights:               types.DefaultWeights(),
	}

	t.Run("Meets rank", func(t *testing.T) {
		report := Score(profileWith(nil, 0, 3), req)
		assert.True(t, report.EducationMatch)
		assert.Equal(t, 20.0, report.EducationScore)
	})

	t.Run("Exceeds rank", func(t *testing.T) {
		report := Score(profileWith(nil, 0, 5), req)
		assert.True(t, report.EducationMatch)
		assert.Equal(t, 20.0, report.EducationScore)
	})

	t.Run("Below rank gets nothing", func(t *testing.T) {
		report := Score(profileWith(nil, 0, 2), req)
		assert.False(t, report.EducationMatch)
		assert.Equal(t, 0.0, report.EducationScore, "education credit is all or nothing")
	})
}

func TestScorePerfectCandidate(t *testing.T) {
	req := ResolvedRequirement{
		RequiredSkills:        []string{"python", "sql"},
		MinExperienceYears:    5,
		RequiredEducationRank: 3,
		Weights:               types.DefaultWeights(),
	}
	report := Score(profileWith([]string{"python", "sql", "docker"}, 8, 4), req)

	assert.Equal(t, 100, report.Score)
	assert.True(t, report.ExperienceMatch)
	assert.True(t, report.EducationMatch)
	assert.Empty(t, report.MissingSkills)
}

func TestScoreInvariants(t *testing.T) {
	req := ResolvedRequirement{
		RequiredSkills:        []string{"aws", "go", "python", "sql"},
		MinExperienceYears:    10,
		RequiredEducationRank: 5,
		Weights:               types.DefaultWeights(),
	}

	profiles := []types.ExtractedProfile{
		profileWith(nil, 0, 0),
		profileWith([]string{"python"}, 3, 2),
		profileWith([]string{"aws", "go", "python", "sql"}, 12, 5),
		profileWith([]string{"docker", "java"}, 50, 1),
	}

	for _, profile := range profiles {
		report := Score(profile, req)

		assert.GreaterOrEqual(t, report.Score, 0)
		assert.LessOrEqual(t, report.Score, 100)

		// matched and missing partition the required set.
		union := append(append([]string{}, report.MatchedSkills...), report.MissingSkills...)
		assert.ElementsMatch(t, req.RequiredSkills, union)
		for _, m := range report.MatchedSkills {
			assert.NotContains(t, report.MissingSkills, m)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	req := ResolvedRequirement{
		RequiredSkills:        []string{"go", "python"},
		MinExperienceYears:    4,
		RequiredEducationRank: 3,
		Weights:               types.DefaultWeights(),
	}
	profile := profileWith([]string{"go"}, 2, 3)

	first := Score(profile, req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(profile, req), "same inputs must yield identical reports")
	}
}

func TestScoreCustomWeights(t *testing.T) {
	req := ResolvedRequirement{
		RequiredSkills: []string{"python"},
		Weights:        types.Weights{Skills: 100, Experience: 0, Education: 0},
	}
	report := Score(profileWith([]string{"python"}, 0, 0), req)
	assert.Equal(t, 100, report.Score)
}
