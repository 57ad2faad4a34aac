// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/pipeline"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProgress outputs one pipeline progress event.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	if event.RunID != "" {
		fmt.Fprintf(p.out, "[%s] %s (run %s)\n", event.Stage, event.Message, event.RunID)
		return
	}
	fmt.Fprintf(p.out, "[%s] %s\n", event.Stage, event.Message)
}

// PrintCompetences outputs the generated competence set.
func (p *Printer) PrintCompetences(set *cv.CoreCompetenceSet) {
	var sb strings.Builder
	for i, text := range set.Texts() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, text)
	}
	p.printBox(fmt.Sprintf("Core Competences (%d)", set.Len()), strings.TrimRight(sb.String(), "\n"))
}

// PrintCVOutline outputs a short outline of the assembled CV.
func (p *Printer) PrintCVOutline(doc *cv.CV) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", doc.Title().Text())
	fmt.Fprintf(&sb, "Language: %s\n", doc.Language().Name)
	fmt.Fprintf(&sb, "Competences: %d\n", doc.Competences().Len())
	fmt.Fprintf(&sb, "Experience entries: %d\n", len(doc.Experiences()))
	fmt.Fprintf(&sb, "Education entries: %d\n", len(doc.Education()))
	fmt.Fprintf(&sb, "Skill groups: %d", len(doc.Skills().Groups()))
	p.printBox("Assembled CV", sb.String())
}
