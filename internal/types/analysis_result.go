// Package types provides type definitions for structured data used throughout the SingCoach analysis system.
package types

import "github.com/go-playground/validator/v10"

// KeyMoment is a timestamped narrative annotation referencing a point in
// the source recording. Order follows the source document and is only
// meaningful for playback seeking.
type KeyMoment struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// AnalysisResult is the structured coaching assessment produced by one
// analysis run. Scores use a 0-10 scale with half-point granularity
// expected from the model but not enforced by the type; decoding never
// clamps values, so callers wanting range enforcement use ValidateScores.
type AnalysisResult struct {
	Overall float64 `json:"overall" validate:"gte=0,lte=10"`
	Pitch   float64 `json:"pitch" validate:"gte=0,lte=10"`
	Tone    float64 `json:"tone" validate:"gte=0,lte=10"`
	Breath  float64 `json:"breath" validate:"gte=0,lte=10"`
	Timing  float64 `json:"timing" validate:"gte=0,lte=10"`

	// TLDR is the narrative summary. An empty string is valid model
	// output; callers treat it as low-value, not as an error.
	TLDR string `json:"tldr"`

	KeyMoments               []KeyMoment `json:"keyMoments"`
	RecommendedExerciseNames []string    `json:"recommendedExerciseNames"`
}

// ValidateScores checks that all five scores fall inside the 0-10 domain
// range. This is a caller-side layer on top of decoding, which accepts
// out-of-range values as-is.
func (r *AnalysisResult) ValidateScores() error {
	validate := validator.New()
	return validate.Struct(r)
}
