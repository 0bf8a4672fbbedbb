// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/publish"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
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
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padLine truncates and pads to the box interior width by rune count, so a
// multi-byte glyph is never split and unicode lines keep the frame aligned.
func padLine(line string) string {
	const width = boxWidth - 4
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-len(runes))
}

// PrintResumeSummary outputs a human-readable summary of the validated document.
func (p *Printer) PrintResumeSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", doc.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", doc.PersonalInfo.Phone))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Activity entries:    %d\n", len(doc.Activities)))
	sb.WriteString(fmt.Sprintf("Skills:              %d\n", len(doc.Skills)))

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancementOutcome outputs the result of a single field enhancement.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEnhancementOutcome(field string, ok bool, err error) {
	if ok {
		fmt.Fprintf(p.out, "✓ enhanced %s\n", field)
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "⚠ %s kept as written: %v\n", field, err)
		return
	}
	fmt.Fprintf(p.out, "⚠ %s kept as written\n", field)
}

// PrintRenderReport outputs the reconciled outcome of a render round.
func (p *Printer) PrintRenderReport(report *render.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Artifacts produced: %d\n", len(report.Produced)))

	count := min(len(report.Produced), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", report.Produced[i]))
	}
	if len(report.Produced) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Produced)-maxItemsToShow))
	}

	if len(report.Failures) > 0 {
		sb.WriteString("\nFailed themes:\n")
		for _, f := range report.Failures {
			reason := f.Reason
			if runes := []rune(reason); len(runes) > 40 {
				reason = string(runes[:37]) + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s: %s\n", f.Theme, reason))
		}
	}

	title := "RENDER REPORT"
	if !report.Success {
		title = "RENDER REPORT (FAILED)"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUploadReport outputs the outcome of a publish batch.
func (p *Printer) PrintUploadReport(report *publish.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if !report.Success {
		sb.WriteString(fmt.Sprintf("Upload failed: %s", report.Diagnostic))
		p.printBox("UPLOAD REPORT (FAILED)", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Uploaded %d artifacts:\n", len(report.URIs)))
	shown := 0
	for name, uri := range report.URIs {
		if shown >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.URIs)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s -> %s\n", name, uri))
		shown++
	}

	p.printBox("UPLOAD REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
