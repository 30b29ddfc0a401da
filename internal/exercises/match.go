// Package exercises resolves freeform exercise recommendations from the
// analysis model against a library of known vocal exercises.
package exercises

import (
	"strings"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/types"
)

// Match resolves each recommended name against the library, preserving
// the order of names and silently skipping names with no match. Matching
// never fails: empty names or an empty library simply yield an empty
// result.
//
// Resolution tiers, tried in order per name:
//  1. Case-sensitive exact match on Name.
//  2. Case-insensitive exact match.
//  3. Case-insensitive substring match in either direction, so a partial
//     recommendation like "Resonance" still resolves to "Resonance Hum".
//
// Within a tier the first library entry wins; no scoring beyond tier
// order is applied.
func Match(names []string, library []types.Exercise) []types.Exercise {
	matched := make([]types.Exercise, 0, len(names))
	for _, name := range names {
		if exercise, ok := resolve(name, library); ok {
			matched = append(matched, exercise)
		}
	}
	return matched
}

// resolve finds at most one library entry for a single recommended name.
func resolve(name string, library []types.Exercise) (types.Exercise, bool) {
	for _, exercise := range library {
		if exercise.Name == name {
			return exercise, true
		}
	}

	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return types.Exercise{}, false
	}

	for _, exercise := range library {
		if strings.ToLower(exercise.Name) == lowered {
			return exercise, true
		}
	}

	for _, exercise := range library {
		candidate := strings.ToLower(exercise.Name)
		if strings.Contains(candidate, lowered) || strings.Contains(lowered, candidate) {
			return exercise, true
		}
	}

	return types.Exercise{}, false
}
