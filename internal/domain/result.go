package domain

import "encoding/json"

// APIRunResult is the JSON document written by the API test runner (Jest --json)
type APIRunResult struct {
	Success        *bool           `json:"success,omitempty"`
	NumTotalTests  *int            `json:"numTotalTests,omitempty"`
	NumPassedTests *int            `json:"numPassedTests,omitempty"`
	NumFailedTests *int            `json:"numFailedTests,omitempty"`
	TestDuration   *float64        `json:"testDuration,omitempty"` // milliseconds
	CoverageMap    json.RawMessage `json:"coverageMap,omitempty"`
}

// UIRunResult is the JSON document written by the UI test runner (Playwright JSON reporter)
type UIRunResult struct {
	Duration *float64  `json:"duration,omitempty"` // milliseconds
	Suites   []UISuite `json:"suites,omitempty"`
}

// UISuite is one top-level suite of a UI run
type UISuite struct {
	Title string   `json:"title,omitempty"`
	File  string   `json:"file,omitempty"`
	Specs []UISpec `json:"specs,omitempty"`
}

// UISpec is a single spec; Ok is true when every attempt of the spec passed
type UISpec struct {
	Title string `json:"title,omitempty"`
	Ok    bool   `json:"ok"`
}

// HasCoverage reports whether the runner attached a non-null coverage map
func (r *APIRunResult) HasCoverage() bool {
	return len(r.CoverageMap) > 0 && string(r.CoverageMap) != "null"
}
