package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctr/internal/domain"
)

func TestGoTestParser_Parse(t *testing.T) {
	parser := NewGoTestParser()

	input := `# example.com/pkg
{"Action":"run","Package":"example.com/pkg","Test":"TestFoo"}
{"Action":"pass","Package":"example.com/pkg","Test":"TestFoo","Elapsed":0.01}
{"Action":"run","Package":"example.com/pkg","Test":"TestBar"}
{"Action":"output","Package":"example.com/pkg","Test":"TestBar","Output":"    bar_test.go:15: expected 42, got 0\n"}
{"Action":"fail","Package":"example.com/pkg","Test":"TestBar","Elapsed":0.02}
{"Action":"skip","Package":"example.com/pkg","Test":"TestSkip","Elapsed":0}
{"Action":"fail","Package":"example.com/pkg","Elapsed":1.5}
`
	summary, err := parser.Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySummary{
		Status:   domain.StatusFailed,
		Passed:   1,
		Total:    2,
		Duration: "1.50s",
		Details:  "Skipped: 1",
	}, summary)
}

func TestGoTestParser_PackageFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.CategorySummary
	}{
		{
			name: "build failure next to passing package",
			input: `{"Action":"run","Package":"example.com/a","Test":"TestA"}
{"Action":"pass","Package":"example.com/a","Test":"TestA","Elapsed":0.01}
{"Action":"pass","Package":"example.com/a","Elapsed":0.1}
{"Action":"output","Package":"example.com/b","Output":"FAIL\texample.com/b [build failed]\n"}
{"Action":"fail","Package":"example.com/b","Elapsed":0}
`,
			want: domain.CategorySummary{
				Status:   domain.StatusFailed,
				Passed:   1,
				Total:    2,
				Duration: "0.10s",
				Details:  "Skipped: 0",
			},
		},
		{
			name:  "build failure only",
			input: `{"Action":"fail","Package":"example.com/b","Elapsed":0}`,
			want: domain.CategorySummary{
				Status:   domain.StatusFailed,
				Passed:   0,
				Total:    1,
				Duration: "0.00s",
				Details:  "Skipped: 0",
			},
		},
		{
			name: "failing test is not counted twice",
			input: `{"Action":"fail","Package":"example.com/c","Test":"TestC","Elapsed":0.01}
{"Action":"fail","Package":"example.com/c","Elapsed":0.2}
`,
			want: domain.CategorySummary{
				Status:   domain.StatusFailed,
				Passed:   0,
				Total:    1,
				Duration: "0.20s",
				Details:  "Skipped: 0",
			},
		},
	}

	parser := NewGoTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := parser.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, summary)
		})
	}
}

func TestGoTestParser_ParseEmpty(t *testing.T) {
	parser := NewGoTestParser()

	_, err := parser.Parse([]byte(`{"Action":"output","Package":"example.com/pkg","Output":"building...\n"}`))
	assert.Error(t, err)

	_, err = parser.Parse(nil)
	assert.Error(t, err)
}
