package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
	"overall": 6.5,
	"pitch": 6.0,
	"tone": 7.0,
	"breath": 7.5,
	"timing": 8.0,
	"tldr": "Solid take with a few pitchy moments in the bridge.",
	"keyMoments": [
		{"timestamp": "0:12", "text": "Strong opening phrase"},
		{"timestamp": "1:05", "text": "Pitch drifts flat on the sustained note"}
	],
	"recommendedExerciseNames": ["Pitch Siren", "Lip Trill", "Diaphragmatic Breathing"]
}`

func TestDecode_ValidDocument(t *testing.T) {
	result, err := Decode(validDocument)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 6.5, result.Overall)
	assert.Equal(t, 6.0, result.Pitch)
	assert.Equal(t, 7.0, result.Tone)
	assert.Equal(t, 7.5, result.Breath)
	assert.Equal(t, 8.0, result.Timing)
	assert.Equal(t, "Solid take with a few pitchy moments in the bridge.", result.TLDR)

	require.Len(t, result.KeyMoments, 2)
	assert.Equal(t, "0:12", result.KeyMoments[0].Timestamp)
	assert.Equal(t, "Strong opening phrase", result.KeyMoments[0].Text)
	assert.Equal(t, "1:05", result.KeyMoments[1].Timestamp)

	assert.Equal(t, []string{"Pitch Siren", "Lip Trill", "Diaphragmatic Breathing"}, result.RecommendedExerciseNames)
}

func TestDecode_FencedFormsDecodeIdentically(t *testing.T) {
	wrapped := []string{
		"```json\n" + validDocument + "\n```",
		"```\n" + validDocument + "\n```",
		validDocument,
	}

	expected, err := Decode(Sanitize(validDocument))
	require.NoError(t, err)

	for _, input := range wrapped {
		result, err := Decode(Sanitize(input))
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	}
}

func TestDecode_MissingRequiredFieldFails(t *testing.T) {
	documents := map[string]string{
		"missing overall": `{"pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
		"missing pitch":   `{"overall": 6.5, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
		"missing tone":    `{"overall": 6.5, "pitch": 6.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
		"missing breath":  `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
		"missing timing":  `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
		"missing tldr":    `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "keyMoments": [], "recommendedExerciseNames": []}`,
		"missing moments": `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "recommendedExerciseNames": []}`,
		"missing names":   `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": []}`,
	}

	for name, document := range documents {
		t.Run(name, func(t *testing.T) {
			result, err := Decode(document)
			assert.Nil(t, result, "partial documents must not yield a partially populated result")

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestDecode_MistypedFieldFails(t *testing.T) {
	documents := map[string]string{
		"string score":      `{"overall": "6.5", "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
		"numeric tldr":      `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": 4, "keyMoments": [], "recommendedExerciseNames": []}`,
		"object moments":    `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": {}, "recommendedExerciseNames": []}`,
		"numeric names":     `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": [1, 2]}`,
		"moment no text":    `{"overall": 6.5, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [{"timestamp": "0:01"}], "recommendedExerciseNames": []}`,
		"null score":        `{"overall": null, "pitch": 6.0, "tone": 7.0, "breath": 7.5, "timing": 8.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`,
	}

	for name, document := range documents {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(document)
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestDecode_EmptySequencesSucceed(t *testing.T) {
	document := `{"overall": 5.0, "pitch": 5.0, "tone": 5.0, "breath": 5.0, "timing": 5.0, "tldr": "Short clip, little to assess.", "keyMoments": [], "recommendedExerciseNames": []}`

	result, err := Decode(document)
	require.NoError(t, err)
	assert.Empty(t, result.KeyMoments)
	assert.Empty(t, result.RecommendedExerciseNames)
}

func TestDecode_EmptyTLDRSucceeds(t *testing.T) {
	document := `{"overall": 5.0, "pitch": 5.0, "tone": 5.0, "breath": 5.0, "timing": 5.0, "tldr": "", "keyMoments": [], "recommendedExerciseNames": []}`

	result, err := Decode(document)
	require.NoError(t, err)
	assert.Equal(t, "", result.TLDR)
}

func TestDecode_DoesNotClampOutOfRangeScores(t *testing.T) {
	document := `{"overall": 12.5, "pitch": -1.0, "tone": 5.0, "breath": 5.0, "timing": 5.0, "tldr": "x", "keyMoments": [], "recommendedExerciseNames": []}`

	result, err := Decode(document)
	require.NoError(t, err)
	assert.Equal(t, 12.5, result.Overall)
	assert.Equal(t, -1.0, result.Pitch)

	// Range enforcement is the caller's layer, not the decoder's.
	assert.Error(t, result.ValidateScores())
}

func TestDecode_ProseFails(t *testing.T) {
	_, err := Decode("The singer did a great job overall, though breath support wavered.")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_Deterministic(t *testing.T) {
	first, err1 := Decode(validDocument)
	second, err2 := Decode(validDocument)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
