package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctr/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Summary: domain.Summary{TotalTests: 10, PassedTests: 9, FailedTests: 1, SuccessRate: 90},
		Categories: map[string]domain.CategorySummary{
			"ui":  {Status: domain.StatusFailed, Passed: 4, Total: 5, Duration: "3.00s", Details: "Browsers: Chrome"},
			"api": {Status: domain.StatusPassed, Passed: 5, Total: 5, Duration: "1.20s", Details: "Coverage: Available"},
		},
		Performance: []domain.PerformanceMetric{
			{Name: "API Response Time", Value: "< 2s", Status: domain.StatusPassed},
		},
		Artifacts: []domain.Artifact{
			{Name: "API Test Report", Path: "./reports/api/api-test-report.html", Type: "HTML Report"},
		},
		Environment: domain.Environment{"CI": "true", "Platform": "linux"},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleReport(), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	page := string(html)

	assert.Contains(t, page, "Generated on: 2026-01-02 03:04:05 UTC")
	assert.Contains(t, page, `<div class="metric">90%</div>`)
	assert.Contains(t, page, `<div class="card warning">`)
	assert.Contains(t, page, `<div class="card error">`)
	assert.Contains(t, page, `<span class="status failed">FAILED</span>`)
	assert.Contains(t, page, "Passed: 4/5 | Duration: 3.00s")
	assert.Contains(t, page, "&lt; 2s")
	assert.Contains(t, page, `href="./reports/api/api-test-report.html"`)
	assert.Contains(t, page, "<tr><td>CI</td><td>true</td></tr>")

	// categories are listed in name order
	assert.Less(t, strings.Index(page, "API Tests"), strings.Index(page, "UI Tests"))
}

func TestRenderHTML_EscapesValues(t *testing.T) {
	report := sampleReport()
	report.Categories["<script>"] = domain.CategorySummary{Status: domain.StatusPassed, Details: `<img src=x onerror="alert(1)">`}
	report.Artifacts = append(report.Artifacts, domain.Artifact{Name: "bad", Path: "javascript:alert(1)", Type: "x"})

	html, err := RenderHTML(report, time.Now())
	require.NoError(t, err)
	page := string(html)

	assert.NotContains(t, page, "<script>")
	assert.NotContains(t, page, "<img src=x")
	assert.NotContains(t, page, `href="javascript:alert(1)"`)
	assert.Contains(t, page, "&lt;SCRIPT&gt; Tests")
}

func TestRenderHTML_NoCategories(t *testing.T) {
	html, err := RenderHTML(&domain.Report{}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(html), "No test results were found.")
	assert.Contains(t, string(html), `<div class="card success">
                <h3>Passed</h3>`)
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleReport())
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "{\n  \"summary\": {\n    \"totalTests\": 10,"))
	assert.Less(t, strings.Index(text, `"api"`), strings.Index(text, `"ui"`))
	assert.Contains(t, text, `"successRate": 90`)
	assert.Contains(t, text, `"status": "failed"`)

	again, err := RenderJSON(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, data, again)
}
