package exercises

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/types"
)

//go:embed library.json
var libraryFile []byte

// DefaultLibrary returns the built-in exercise library embedded in the
// binary. The slice is freshly allocated on each call so callers may
// modify it freely.
func DefaultLibrary() []types.Exercise {
	var library []types.Exercise
	if err := json.Unmarshal(libraryFile, &library); err != nil {
		// The embedded file is fixed at build time; failing to parse it
		// is a packaging bug.
		panic(fmt.Sprintf("embedded exercise library is invalid: %v", err))
	}
	return library
}

// Load reads an exercise library from a JSON file. Entries must carry a
// template_id and a name; anything else is rejected rather than silently
// producing unmatched library entries.
func Load(path string) ([]types.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercise library %s: %w", path, err)
	}

	var library []types.Exercise
	if err := json.Unmarshal(data, &library); err != nil {
		return nil, fmt.Errorf("failed to parse exercise library %s: %w", path, err)
	}

	for i, exercise := range library {
		if exercise.TemplateID == "" {
			return nil, fmt.Errorf("exercise library %s: entry %d has no template_id", path, i)
		}
		if exercise.Name == "" {
			return nil, fmt.Errorf("exercise library %s: entry %d (%s) has no name", path, i, exercise.TemplateID)
		}
	}

	return library, nil
}
