// Package audio resolves logical recording references to raw audio bytes.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError reports that no readable recording exists for a reference.
type NotFoundError struct {
	Reference string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no recording found for reference %q", e.Reference)
}

// Resolver maps logical recording references to file bytes. References are
// paths relative to a recordings root by external convention; the resolver
// does not interpret them beyond joining and reading.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver rooted at the given recordings directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve returns the recording bytes and mime type for a reference, or a
// *NotFoundError when no readable file exists at the resolved location.
func (r *Resolver) Resolve(reference string) ([]byte, string, error) {
	path := reference
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, reference)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, "", &NotFoundError{Reference: reference}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &NotFoundError{Reference: reference}
	}

	return data, MIMEType(path), nil
}

// MIMEType derives the audio mime type from a file extension. Unknown
// extensions fall back to audio/mp4, the format the recorder produces.
func MIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".aac":
		return "audio/aac"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".aiff", ".aif":
		return "audio/aiff"
	default:
		return "audio/mp4"
	}
}
