package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctr/internal/domain"
)

func TestJestParser_Parse(t *testing.T) {
	parser := NewJestParser()

	tests := []struct {
		name     string
		input    string
		expected domain.CategorySummary
	}{
		{
			name:  "all passed",
			input: `{"success":true,"numTotalTests":5,"numPassedTests":5,"numFailedTests":0,"testDuration":1200}`,
			expected: domain.CategorySummary{
				Status:   domain.StatusPassed,
				Passed:   5,
				Total:    5,
				Duration: "1.20s",
				Details:  "Coverage: Not available",
			},
		},
		{
			name:  "some failed with coverage",
			input: `{"success":false,"numTotalTests":10,"numPassedTests":7,"numFailedTests":3,"testDuration":4567,"coverageMap":{"src/a.js":{}}}`,
			expected: domain.CategorySummary{
				Status:   domain.StatusFailed,
				Passed:   7,
				Total:    10,
				Duration: "4.57s",
				Details:  "Coverage: Available",
			},
		},
		{
			name:  "missing duration",
			input: `{"success":true,"numTotalTests":1,"numPassedTests":1}`,
			expected: domain.CategorySummary{
				Status:   domain.StatusPassed,
				Passed:   1,
				Total:    1,
				Duration: "0.00s",
				Details:  "Coverage: Not available",
			},
		},
		{
			name:  "runner failure without failing tests",
			input: `{"success":false,"numTotalTests":2,"numPassedTests":2,"numFailedTests":0,"testDuration":10}`,
			expected: domain.CategorySummary{
				Status:   domain.StatusPassed,
				Passed:   2,
				Total:    2,
				Duration: "0.01s",
				Details:  "Coverage: Not available; runner reported failure",
			},
		},
		{
			name:  "null coverage map",
			input: `{"numTotalTests":0,"numPassedTests":0,"coverageMap":null}`,
			expected: domain.CategorySummary{
				Status:   domain.StatusPassed,
				Duration: "0.00s",
				Details:  "Coverage: Not available",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := parser.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, summary)
		})
	}
}

func TestJestParser_ParseRejectsMalformed(t *testing.T) {
	parser := NewJestParser()

	inputs := map[string]string{
		"invalid json":         `{"numTotalTests": 5,`,
		"passed exceeds total": `{"numTotalTests":2,"numPassedTests":3}`,
		"wrong type":           `{"numTotalTests":"two","numPassedTests":1}`,
		"missing passed count": `{"numTotalTests":2}`,
		"array instead of obj": `[]`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}
