package analysis

import "fmt"

// AudioFileNotFoundError reports that no readable audio exists for the
// given reference. The capability ports are never invoked in this case.
type AudioFileNotFoundError struct {
	Reference string
	Cause     error
}

func (e *AudioFileNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("audio file not found for %q: %v", e.Reference, e.Cause)
	}
	return fmt.Sprintf("audio file not found for %q", e.Reference)
}

func (e *AudioFileNotFoundError) Unwrap() error {
	return e.Cause
}

// TranscriptionError reports that the transcription capability call
// failed. The analysis capability is never attempted after this error.
type TranscriptionError struct {
	Message string
	Cause   error
}

func (e *TranscriptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transcription failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transcription failed: %s", e.Message)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}

// AnalysisError reports that the analysis capability call itself failed,
// as distinct from a response that arrived but did not decode.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis failed: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// InvalidResponseError reports that the analysis capability returned
// successfully but its payload did not decode into a valid document.
type InvalidResponseError struct {
	Message string
	Cause   error
}

func (e *InvalidResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid analysis response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid analysis response: %s", e.Message)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Cause
}

// DecodeError reports that sanitized text could not be decoded into an
// analysis result: invalid syntax, or a missing or mistyped required field.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
