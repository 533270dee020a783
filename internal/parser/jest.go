package parser

import (
	"encoding/json"
	"fmt"

	"ctr/internal/domain"
	"ctr/internal/schema"
)

// JestParser parses the aggregated JSON written by the API runner
type JestParser struct{}

// NewJestParser creates a new JestParser
func NewJestParser() *JestParser {
	return &JestParser{}
}

// Name returns the format identifier
func (p *JestParser) Name() string {
	return "jest"
}

// Parse maps the runner counters onto a category summary.
// The passed == total invariant decides the status; a runner that reports
// success=false with no failing test is noted in the details.
func (p *JestParser) Parse(data []byte) (domain.CategorySummary, error) {
	if err := schema.ValidateAPIResult(data); err != nil {
		return domain.CategorySummary{}, err
	}

	var result domain.APIRunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.CategorySummary{}, fmt.Errorf("decode api result: %w", err)
	}

	total := intOrZero(result.NumTotalTests)
	passed := intOrZero(result.NumPassedTests)
	if passed > total {
		return domain.CategorySummary{}, fmt.Errorf("numPassedTests (%d) exceeds numTotalTests (%d)", passed, total)
	}

	coverage := "Not available"
	if result.HasCoverage() {
		coverage = "Available"
	}
	details := "Coverage: " + coverage

	status := domain.StatusFor(passed, total)
	if status == domain.StatusPassed && result.Success != nil && !*result.Success {
		details += "; runner reported failure"
	}

	return domain.CategorySummary{
		Status:   status,
		Passed:   passed,
		Total:    total,
		Duration: formatDuration(floatOrZero(result.TestDuration)),
		Details:  details,
	}, nil
}
