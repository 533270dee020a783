package parser

import (
	"fmt"

	"ctr/internal/domain"
)

// Parser normalizes the result file of one test runner into a category summary
type Parser interface {
	// Name returns the format identifier of the parser
	Name() string
	// Parse decodes and validates a result document
	Parse(data []byte) (domain.CategorySummary, error)
}

// formatDuration renders milliseconds as seconds with two decimals, e.g. "1.20s"
func formatDuration(ms float64) string {
	return fmt.Sprintf("%.2fs", ms/1000)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
