// Package observability provides formatted terminal output for report
// summaries.
package observability

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jonathan/argo-timeline/internal/argo"
	"github.com/jonathan/argo-timeline/internal/report"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// topRunsToShow is the number of longest-running workflows to display
	topRunsToShow = 5
)

// Printer handles formatted summary output.
type Printer struct {
	out      io.Writer
	headline *color.Color
	colorize bool
}

// NewPrinter creates a Printer that writes to the given writer. Color is
// enabled only when the writer is a terminal.
func NewPrinter(out io.Writer) *Printer {
	colorize := false
	if f, ok := out.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}
	return &Printer{
		out:      out,
		headline: color.New(color.FgCyan, color.Bold),
		colorize: colorize,
	}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	// Pad before colorizing so ANSI escapes don't skew the box width.
	title = fmt.Sprintf("%-*s", boxWidth-4, title)
	if p.colorize {
		title = p.headline.Sprint(title)
	}
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the summary statistics for a filtered run set,
// including the longest-running workflows.
func (p *Printer) PrintSummary(stats report.SummaryStats, runs []argo.WorkflowRun) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total workflows:  %d\n", stats.Count))
	sb.WriteString(fmt.Sprintf("Unique workflows: %d\n", stats.UniqueNames))
	sb.WriteString("\n")

	if stats.Durations == nil {
		sb.WriteString("Duration statistics: no completed runs\n")
	} else {
		d := stats.Durations
		sb.WriteString("Duration statistics:\n")
		sb.WriteString(fmt.Sprintf("  Average: %.2fs\n", d.Mean.Seconds()))
		sb.WriteString(fmt.Sprintf("  Median:  %.2fs\n", d.Median.Seconds()))
		sb.WriteString(fmt.Sprintf("  Min:     %.2fs\n", d.Min.Seconds()))
		sb.WriteString(fmt.Sprintf("  Max:     %.2fs\n", d.Max.Seconds()))
	}

	top := report.TopLongest(runs, topRunsToShow)
	if len(top) > 0 {
		sb.WriteString(fmt.Sprintf("\nTop %d longest running:\n", len(top)))
		for i, run := range top {
			d, _ := run.Duration()
			sb.WriteString(fmt.Sprintf("  %d. %s  %.0fs\n", i+1, run.RunID, d.Seconds()))
		}
	}

	p.printBox("WORKFLOW SUMMARY STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}
