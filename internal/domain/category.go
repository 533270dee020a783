package domain

// Status is the outcome of a category
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Well-known category names
const (
	CategoryAPI = "api"
	CategoryUI  = "ui"
)

// CategorySummary is the normalized result of one runner
type CategorySummary struct {
	Status   Status `json:"status"`
	Passed   int    `json:"passed"`
	Total    int    `json:"total"`
	Duration string `json:"duration"`
	Details  string `json:"details"`
}

// StatusFor returns passed only when every test passed.
func StatusFor(passed, total int) Status {
	if passed == total {
		return StatusPassed
	}
	return StatusFailed
}

// Failed returns the number of tests that did not pass
func (c CategorySummary) Failed() int {
	return c.Total - c.Passed
}
