package extraction

import (
	"time"

	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/skills"
	"github.com/jonathan/ats-engine/internal/types"
)

// Profile runs every signal extractor over one resume's raw text and
// assembles the result. Email and phone extraction read the raw text (they
// depend on characters normalization strips); everything else reads the
// normalized form. The returned profile is complete and never nil-sliced,
// so it marshals with empty arrays rather than nulls.
func Profile(rawText string, idx *skills.Index, now time.Time) types.ExtractedProfile {
	normalized := parsing.Normalize(rawText)

	return types.ExtractedProfile{
		Skills:          Skills(normalized, idx),
		Emails:          Emails(rawText),
		Phones:          Phones(rawText),
		ExperienceYears: ExperienceYears(rawText, now),
		EducationLevel:  Education(normalized),
	}
}
