package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ctr/internal/domain"
)

// ReportViewer browses the categories of a report in an interactive TUI
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// View displays the report categories in an interactive TUI
func (rv *ReportViewer) View(report *domain.Report) error {
	if len(report.Categories) == 0 {
		color.Yellow("No test results in the last report")
		return nil
	}

	names := sortedCategories(report.Categories)

	app := tview.NewApplication()

	// Categories on the left
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, name := range names {
		list.AddItem(rv.listItemText(name, report.Categories[name]), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(rv.formatHeader(report.Summary))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(names) {
			detailsView.SetText(rv.formatCategory(names[index], report.Categories[names[index]]))
		}
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	updateDetails()

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (rv *ReportViewer) listItemText(name string, c domain.CategorySummary) string {
	label := tview.Escape(strings.ToUpper(name))
	if c.Status == domain.StatusPassed {
		return fmt.Sprintf("[green]✓[white] %s", label)
	}
	return fmt.Sprintf("[red]✗[white] %s", label)
}

func (rv *ReportViewer) formatHeader(s domain.Summary) string {
	return fmt.Sprintf(" %d tests | [green]%d passed[white] | [red]%d failed[white] | %d%% | ↑↓ navigate, → details, q to exit ",
		s.TotalTests, s.PassedTests, s.FailedTests, s.SuccessRate)
}

// formatCategory formats a category for display using tview color tags
func (rv *ReportViewer) formatCategory(name string, c domain.CategorySummary) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	statusColor := "green"
	if c.Status != domain.StatusPassed {
		statusColor = "red"
	}
	fmt.Fprintf(w, "[cyan]%s Tests[white]\n\n", tview.Escape(strings.ToUpper(name)))
	fmt.Fprintf(w, "Status:\t[%s]%s[white]\n", statusColor, strings.ToUpper(string(c.Status)))
	fmt.Fprintf(w, "Passed:\t%d/%d\n", c.Passed, c.Total)
	fmt.Fprintf(w, "Failed:\t%d\n", c.Failed())
	duration := c.Duration
	if duration == "" {
		duration = "N/A"
	}
	fmt.Fprintf(w, "Duration:\t%s\n", tview.Escape(duration))
	if c.Details != "" {
		fmt.Fprintf(w, "\n[yellow]Details:[white]\n%s\n", tview.Escape(c.Details))
	}

	w.Flush()
	return builder.String()
}
