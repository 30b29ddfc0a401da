package analysis

import "strings"

// Sanitize removes an optional markdown code-fence wrapping from generated
// text. Models often wrap JSON in ```json ... ``` blocks even when
// instructed not to. Sanitize never fails: input without fence markers
// passes through unchanged apart from whitespace trimming, and already
// clean input is a no-op.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			// If first line looks like a language identifier (no spaces, short), skip it
			if firstLine != "" && len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
