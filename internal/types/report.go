// Package types defines the shared data model for the ATS scoring engine.
package types

// EducationLevel is the highest academic credential detected in a resume.
// Rank encodes relative seniority: doctorate 5, master 4, bachelor 3,
// associate 2, high school 1, unknown 0.
type EducationLevel struct {
	Label string `json:"educationLevel"`
	Rank  int    `json:"educationRank"`
}

// ExtractedProfile holds the structured signals extracted from one resume.
// It is built once per resume and never mutated afterwards.
type ExtractedProfile struct {
	Skills          []string `json:"skills"`
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	ExperienceYears int      `json:"experienceYears"`
	EducationLevel
}

// MatchReport is the full output of scoring one resume against one job.
// The JSON shape matches the persisted report schema consumed downstream;
// field names must not change without a schema migration.
type MatchReport struct {
	Extracted       ExtractedProfile `json:"extracted"`
	MatchedSkills   []string         `json:"matchedSkills"`
	MissingSkills   []string         `json:"missingSkills"`
	ExperienceMatch bool             `json:"experienceMatch"`
	EducationMatch  bool             `json:"educationMatch"`
	SkillsScore     float64          `json:"skillsScore"`
	ExperienceScore float64          `json:"experienceScore"`
	EducationScore  float64          `json:"educationScore"`
	Score           int              `json:"score"`
}
