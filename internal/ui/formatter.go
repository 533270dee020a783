package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"ctr/internal/domain"
)

const rowSeparator = "├─────────────────────────────────┼─────────────────────────────┤"

// Formatter prints report statistics to the terminal
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output}
}

// NewFormatterWithWriter creates a Formatter writing to w (for testing)
func NewFormatterWithWriter(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintSummary displays the aggregate counts, the per-category results and the report location
func (f *Formatter) PrintSummary(report *domain.Report, location string) {
	s := report.Summary
	white := color.New(color.FgWhite)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintln(f.out)
	color.New(color.FgCyan).Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	color.New(color.FgCyan).Fprintln(f.out, "║                 Consolidated Test Report                      ║")
	color.New(color.FgCyan).Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Tests", white, fmt.Sprintf("%d", s.TotalTests))
	fmt.Fprintln(f.out, rowSeparator)
	f.row("Passed", green, fmt.Sprintf("%d", s.PassedTests))
	fmt.Fprintln(f.out, rowSeparator)
	failedColor := green
	if s.FailedTests > 0 {
		failedColor = red
	}
	f.row("Failed", failedColor, fmt.Sprintf("%d", s.FailedTests))
	fmt.Fprintln(f.out, rowSeparator)
	f.row("Success Rate", white, fmt.Sprintf("%d%%", s.SuccessRate))

	for _, name := range sortedCategories(report.Categories) {
		c := report.Categories[name]
		fmt.Fprintln(f.out, rowSeparator)
		rowColor := green
		if c.Status != domain.StatusPassed {
			rowColor = red
		}
		f.row(strings.ToUpper(name)+" Tests", rowColor, fmt.Sprintf("%d/%d in %s", c.Passed, c.Total, c.Duration))
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if len(report.Categories) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "! No test results were found")
	} else if s.FailedTests == 0 {
		green.Fprintln(f.out, "✓ All tests passed!")
	} else {
		red.Fprintf(f.out, "✗ %d of %d test(s) failed\n", s.FailedTests, s.TotalTests)
	}
	if location != "" {
		fmt.Fprintf(f.out, "Report location: %s\n", location)
	}
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

func sortedCategories(categories map[string]domain.CategorySummary) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
