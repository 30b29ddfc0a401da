package types

// Exercise is a library item that recommended exercise names resolve
// against. Libraries are supplied by the caller per invocation; the
// analysis core never persists or mutates them.
type Exercise struct {
	TemplateID  string   `json:"template_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Instruction string   `json:"instruction"`
	FocusArea   string   `json:"focus_area"`
	Keywords    []string `json:"keywords,omitempty"`
}
