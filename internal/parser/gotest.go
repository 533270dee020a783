package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"ctr/internal/domain"
)

// testEvent is a single line of `go test -json` output
type testEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
}

// GoTestParser parses a `go test -json` event stream
type GoTestParser struct{}

// NewGoTestParser creates a new GoTestParser
func NewGoTestParser() *GoTestParser {
	return &GoTestParser{}
}

// Name returns the format identifier
func (p *GoTestParser) Name() string {
	return "gotest"
}

// Parse counts test-level pass and fail events. Skipped tests are left out of
// the total. A package that fails without a failing test of its own (build
// error, TestMain, panic outside a test) counts as one failed test. Lines that
// are not JSON (build output) are ignored.
func (p *GoTestParser) Parse(data []byte) (domain.CategorySummary, error) {
	var passed, failed, skipped int
	var elapsed float64
	failedTests := make(map[string]int)
	var failedPackages []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] != '{' {
			continue
		}

		var event testEvent
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}

		if event.Test == "" {
			// package-level result carries the package wall time
			if event.Action == "pass" || event.Action == "fail" {
				elapsed += event.Elapsed
			}
			if event.Action == "fail" {
				failedPackages = append(failedPackages, event.Package)
			}
			continue
		}

		switch event.Action {
		case "pass":
			passed++
		case "fail":
			failed++
			failedTests[event.Package]++
		case "skip":
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.CategorySummary{}, fmt.Errorf("read go test events: %w", err)
	}

	for _, pkg := range failedPackages {
		if failedTests[pkg] == 0 {
			failed++
			failedTests[pkg]++
		}
	}

	if passed == 0 && failed == 0 && skipped == 0 {
		return domain.CategorySummary{}, errors.New("no test events found")
	}

	total := passed + failed
	return domain.CategorySummary{
		Status:   domain.StatusFor(passed, total),
		Passed:   passed,
		Total:    total,
		Duration: formatDuration(elapsed * 1000),
		Details:  fmt.Sprintf("Skipped: %d", skipped),
	}, nil
}
