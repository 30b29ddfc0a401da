// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxMomentsToShow is the default number of key moments to display
	maxMomentsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisResult outputs a human-readable summary of an assessment.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %.1f / 10\n", result.Overall))
	sb.WriteString(fmt.Sprintf("Pitch:    %.1f   Tone:   %.1f\n", result.Pitch, result.Tone))
	sb.WriteString(fmt.Sprintf("Breath:   %.1f   Timing: %.1f\n", result.Breath, result.Timing))

	if result.TLDR != "" {
		sb.WriteString("\n")
		sb.WriteString(result.TLDR)
		sb.WriteString("\n")
	}

	if len(result.KeyMoments) > 0 {
		sb.WriteString("\nKey moments:\n")
		shown := result.KeyMoments
		if len(shown) > maxMomentsToShow {
			shown = shown[:maxMomentsToShow]
		}
		for _, moment := range shown {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", moment.Timestamp, moment.Text))
		}
		if len(result.KeyMoments) > maxMomentsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.KeyMoments)-maxMomentsToShow))
		}
	}

	if len(result.RecommendedExerciseNames) > 0 {
		sb.WriteString("\nRecommended exercises:\n")
		for _, name := range result.RecommendedExerciseNames {
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		}
	}

	p.printBox("Assessment", sb.String())
}

// PrintTranscript outputs the raw transcript returned by transcription.
func (p *Printer) PrintTranscript(transcript string) {
	p.printBox("Transcript", transcript)
}

// PrintExercises outputs resolved library exercises with their focus areas.
func (p *Printer) PrintExercises(matched []types.Exercise) {
	var sb strings.Builder

	if len(matched) == 0 {
		sb.WriteString("No recommendations matched the library.\n")
	}
	for _, exercise := range matched {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", exercise.Name, exercise.FocusArea))
		if exercise.Instruction != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", exercise.Instruction))
		}
	}

	p.printBox("Matched Exercises", sb.String())
}
