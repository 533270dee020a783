package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"ctr/internal/domain"
	"ctr/internal/schema"
)

// DefaultBrowsers are listed in the UI category details when none are configured
var DefaultBrowsers = []string{"Chrome", "Firefox", "Safari"}

// PlaywrightParser parses the JSON reporter output of the UI runner
type PlaywrightParser struct {
	browsers []string
}

// NewPlaywrightParser creates a new PlaywrightParser; an empty browser list falls back to DefaultBrowsers
func NewPlaywrightParser(browsers []string) *PlaywrightParser {
	if len(browsers) == 0 {
		browsers = DefaultBrowsers
	}
	return &PlaywrightParser{browsers: browsers}
}

// Name returns the format identifier
func (p *PlaywrightParser) Name() string {
	return "playwright"
}

// Parse counts specs across all top-level suites. A result without suites
// yields 0/0, which is reported as passed.
func (p *PlaywrightParser) Parse(data []byte) (domain.CategorySummary, error) {
	if err := schema.ValidateUIResult(data); err != nil {
		return domain.CategorySummary{}, err
	}

	var result domain.UIRunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.CategorySummary{}, fmt.Errorf("decode ui result: %w", err)
	}

	var total, passed int
	for _, suite := range result.Suites {
		total += len(suite.Specs)
		for _, spec := range suite.Specs {
			if spec.Ok {
				passed++
			}
		}
	}

	return domain.CategorySummary{
		Status:   domain.StatusFor(passed, total),
		Passed:   passed,
		Total:    total,
		Duration: formatDuration(floatOrZero(result.Duration)),
		Details:  "Browsers: " + strings.Join(p.browsers, ", "),
	}, nil
}
