// Package analysis orchestrates the two-stage assessment of a vocal
// recording: transcription from audio, then a scored structured analysis
// of the transcript.
package analysis

import (
	"context"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/llm"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/prompts"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/types"
)

// AudioSource resolves a logical recording reference to raw audio bytes
// and their mime type.
type AudioSource interface {
	Resolve(reference string) (data []byte, mimeType string, err error)
}

// Analyzer coordinates the analysis pipeline. It holds two independently
// configured capability clients, one for transcription and one for scored
// analysis, plus an audio source. An Analyzer holds no mutable state
// across invocations; concurrent Analyze calls are safe as long as the
// clients themselves are.
type Analyzer struct {
	transcriber llm.Client
	analyst     llm.Client
	source      AudioSource
}

// New creates an Analyzer from its three collaborators.
func New(transcriber, analyst llm.Client, source AudioSource) *Analyzer {
	return &Analyzer{
		transcriber: transcriber,
		analyst:     analyst,
		source:      source,
	}
}

// Analyze runs the full pipeline for one recording reference and returns
// the decoded assessment together with the verbatim transcript.
//
// The analysis capability is never invoked when transcription fails: the
// second call is the expensive one, and skipping it on upstream failure
// is a contract of this method, not an accident of control flow.
//
// Failure mapping: resolution failure -> *AudioFileNotFoundError (no
// capability calls made); transcription call failure ->
// *TranscriptionError; analysis call failure -> *AnalysisError; analysis
// response that does not decode -> *InvalidResponseError. Context
// cancellation abandons the pipeline at the current step and returns the
// context's error.
func (a *Analyzer) Analyze(ctx context.Context, reference string, performance bool) (*types.AnalysisResult, string, error) {
	data, mimeType, err := a.source.Resolve(reference)
	if err != nil {
		return nil, "", &AudioFileNotFoundError{Reference: reference, Cause: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	transcript, err := a.transcriber.GenerateFromAudio(ctx, data, mimeType)
	if err != nil {
		return nil, "", &TranscriptionError{
			Message: "transcription capability call failed",
			Cause:   err,
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	// The transcript is free text, not structured data: it is returned
	// verbatim with no sanitization or decoding applied.
	prompt := buildAnalysisPrompt(transcript, performance)

	response, err := a.analyst.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		return nil, "", &AnalysisError{
			Message: "analysis capability call failed",
			Cause:   err,
		}
	}

	result, err := Decode(Sanitize(response))
	if err != nil {
		// The analysis call itself succeeded; the failure is purely in
		// response shape.
		return nil, "", &InvalidResponseError{
			Message: "analysis response did not decode",
			Cause:   err,
		}
	}

	return result, transcript, nil
}

// buildAnalysisPrompt embeds the transcript in the scoring prompt. The
// performance flag selects the rubric framing conveyed to the model;
// orchestration itself does not branch on it anywhere else.
func buildAnalysisPrompt(transcript string, performance bool) string {
	key := "analyze-lesson"
	if performance {
		key = "analyze-performance"
	}

	template := prompts.MustGet(key)
	return prompts.Format(template, map[string]string{
		"Transcript": transcript,
	})
}
