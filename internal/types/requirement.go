package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a single validator instance shared across calls (it caches
// struct metadata and is safe for concurrent use).
var validate = validator.New()

// Weights controls the contribution of each scoring component. Components
// must be non-negative and sum to 100 so that the composite score stays in
// the 0-100 range.
type Weights struct {
	Skills     float64 `json:"skills" validate:"gte=0,lte=100"`
	Experience float64 `json:"experience" validate:"gte=0,lte=100"`
	Education  float64 `json:"education" validate:"gte=0,lte=100"`
}

// DefaultWeights returns the standard 50/30/20 weighting used when a job
// does not define its own.
func DefaultWeights() Weights {
	return Weights{Skills: 50, Experience: 30, Education: 20}
}

// Validate checks that the weights are individually in range and sum to 100.
func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return &ValidationError{Field: "weights", Message: err.Error()}
	}
	if sum := w.Skills + w.Experience + w.Education; sum != 100 {
		return &ValidationError{Field: "weights", Message: "weights must sum to 100"}
	}
	return nil
}

// JobRequirement is the raw, free-text form of a job's requirements as
// supplied by the job-posting collaborator. Experience and Education are
// unstructured strings (e.g. "3+ years", "Bachelor's degree or equivalent")
// and are resolved to numeric form before scoring.
type JobRequirement struct {
	RequiredSkills []string `json:"requiredSkills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Weights        *Weights `json:"weights,omitempty"`
}

// Validate checks that the requirement carries the fields scoring needs.
// RequiredSkills must be present (an empty list is valid and means "no skill
// requirement"), and every listed skill must be a non-blank string.
func (r *JobRequirement) Validate() error {
	if r == nil {
		return &ValidationError{Message: "job requirement is nil"}
	}
	if r.RequiredSkills == nil {
		return &ValidationError{Field: "requiredSkills", Message: "field is required (use [] for no skill requirement)"}
	}
	for _, s := range r.RequiredSkills {
		if strings.TrimSpace(s) == "" {
			return &ValidationError{Field: "requiredSkills", Message: "skill names must be non-empty"}
		}
	}
	if r.Weights != nil {
		return r.Weights.Validate()
	}
	return nil
}
