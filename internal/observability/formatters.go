// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/site-scribe/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintReport outputs a human-readable summary of an extracted report with
// per-field confidence scores.
func (p *Printer) PrintReport(rep *types.Report) {
	if rep == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Date:       %s\n", ptrOrDash(rep.Date)))
	if rep.PersonnelCount != nil {
		sb.WriteString(fmt.Sprintf("Personnel:  %d\n", *rep.PersonnelCount))
	} else {
		sb.WriteString("Personnel:  —\n")
	}
	sb.WriteString("\n")

	p.printList(&sb, "Subcontractors", rep.Subcontractors)
	p.printList(&sb, "Completed tasks", rep.CompletedTasks)

	if len(rep.Issues) > 0 {
		sb.WriteString("Issues:\n")
		count := min(len(rep.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := rep.Issues[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", issue.Type, firstLine(issue.Summary)))
		}
		sb.WriteString("\n")
	}

	p.printList(&sb, "Safety observations", rep.SafetyObservations)

	sb.WriteString("Confidence:\n")
	for _, name := range types.FieldNames {
		sb.WriteString(fmt.Sprintf("  %-20s %.2f\n", name, rep.Confidence[name]))
	}
	if rep.LowConfidence {
		sb.WriteString("\n⚠ low confidence: at least one field below threshold")
	}

	p.printBox("EXTRACTED SITE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// printList writes a titled bullet list, truncated to maxItemsToShow.
func (p *Printer) printList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", firstLine(items[i])))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func ptrOrDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

// firstLine trims an entry down to its first line, since bucket entries are
// whole paragraphs.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
