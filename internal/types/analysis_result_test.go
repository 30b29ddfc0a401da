package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *AnalysisResult {
	return &AnalysisResult{
		Overall: 6.5,
		Pitch:   6.0,
		Tone:    7.0,
		Breath:  7.5,
		Timing:  8.0,
		TLDR:    "Good take.",
		KeyMoments: []KeyMoment{
			{Timestamp: "0:10", Text: "Nice phrasing"},
		},
		RecommendedExerciseNames: []string{"Lip Trill"},
	}
}

func TestValidateScores(t *testing.T) {
	assert.NoError(t, validResult().ValidateScores())
}

func TestValidateScores_Boundaries(t *testing.T) {
	result := validResult()
	result.Overall = 0
	result.Pitch = 10
	assert.NoError(t, result.ValidateScores())
}

func TestValidateScores_OutOfRange(t *testing.T) {
	t.Run("above ten", func(t *testing.T) {
		result := validResult()
		result.Breath = 10.5
		assert.Error(t, result.ValidateScores())
	})

	t.Run("negative", func(t *testing.T) {
		result := validResult()
		result.Timing = -0.5
		assert.Error(t, result.ValidateScores())
	})
}

func TestAnalysisResultJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(validResult())
	require.NoError(t, err)

	// The wire shape uses camelCase keys; these names are load-bearing
	// for the decoder and the analysis prompts.
	for _, key := range []string{`"overall"`, `"pitch"`, `"tone"`, `"breath"`, `"timing"`, `"tldr"`, `"keyMoments"`, `"recommendedExerciseNames"`, `"timestamp"`, `"text"`} {
		assert.Contains(t, string(data), key)
	}
}
