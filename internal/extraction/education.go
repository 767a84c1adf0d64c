package extraction

import (
	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/types"
)

// educationLevel pairs a rank with the normalized phrases that signal it.
type educationLevel struct {
	label   string
	rank    int
	phrases []string
}

// educationLevels is the fixed rank table: doctorate 5 down to high school 1.
// Phrases are in Normalize form; "ph.d." appears alongside "ph.d" because
// normalization keeps a trailing period attached to the token.
var educationLevels = []educationLevel{
	{"doctorate", 5, []string{"phd", "ph.d", "ph.d.", "doctorate", "doctoral", "dphil", "d.phil"}},
	{"master", 4, []string{"master", "masters", "master s", "msc", "m.sc", "m.s", "m.s.", "mba"}},
	{"bachelor", 3, []string{"bachelor", "bachelors", "bachelor s", "bsc", "b.sc", "b.s", "b.s.", "b.a", "btech", "b.tech", "undergraduate degree"}},
	{"associate", 2, []string{"associate degree", "associates degree", "associate s degree"}},
	{"high school", 1, []string{"high school", "highschool", "secondary school", "ged"}},
}

// Education detects the highest academic credential mentioned in normalized
// resume text. Every level's phrases are tested as bounded phrases and the
// highest rank found wins: a resume mentioning both "bachelor" and "phd"
// yields doctorate. Returns the zero EducationLevel when nothing matches.
func Education(normalizedText string) types.EducationLevel {
	best := types.EducationLevel{}
	for _, level := range educationLevels {
		if level.rank <= best.Rank {
			continue
		}
		for _, phrase := range level.phrases {
			if parsing.HasTerm(normalizedText, phrase) {
				best = types.EducationLevel{Label: level.label, Rank: level.rank}
				break
			}
		}
	}
	return best
}
