package analysis

import (
	"encoding/json"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/schemas"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/types"
)

// Decode parses sanitized text into an AnalysisResult. It fails with a
// *DecodeError when the text is not valid JSON, when any required field
// (the five scores, tldr, keyMoments, recommendedExerciseNames) is
// missing, or when a field has the wrong type. Decode never clamps or
// rounds score values; range validation is a caller concern layered on
// top via types.AnalysisResult.ValidateScores.
func Decode(sanitized string) (*types.AnalysisResult, error) {
	if err := schemas.ValidateAnalysisDocument(sanitized); err != nil {
		return nil, &DecodeError{
			Message: "analysis document failed schema validation",
			Cause:   err,
		}
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(sanitized), &result); err != nil {
		return nil, &DecodeError{
			Message: "failed to parse analysis document",
			Cause:   err,
		}
	}

	return &result, nil
}
