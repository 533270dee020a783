package config

import "ctr/internal/domain"

const (
	// DefaultConfigFile is the optional YAML config looked up in the working directory
	DefaultConfigFile = "ctr.yaml"
	// DefaultEnvFile is the optional dotenv file loaded before reading the environment
	DefaultEnvFile = ".env"
	// DefaultAPIResultsPath is where the API runner writes its JSON results
	DefaultAPIResultsPath = "./reports/api/api-test-results.json"
	// DefaultUIResultsPath is where the UI runner writes its JSON results
	DefaultUIResultsPath = "./test-results/results.json"
	// DefaultReportDir is the consolidated report directory
	DefaultReportDir = "./consolidated-report"
	// DefaultRootHTMLFile is the top-level copy of the HTML report for static hosting
	DefaultRootHTMLFile = "./summary-report.html"
	// IndexFileName is the HTML report file name inside the report directory
	IndexFileName = "index.html"
	// SummaryFileName is the JSON summary file name inside the report directory
	SummaryFileName = "summary.json"
	// CIEnvVar is surfaced as-is in the environment block
	CIEnvVar = "CI"
	// DebugEnvVar enables debug traces when set to a non-empty value
	DebugEnvVar = "CTR_DEBUG"
)

// DefaultSources are the result files read when no config file overrides them
var DefaultSources = []domain.Source{
	{Category: domain.CategoryAPI, Path: DefaultAPIResultsPath, Format: "jest"},
	{Category: domain.CategoryUI, Path: DefaultUIResultsPath, Format: "playwright"},
}

// DefaultPerformance are placeholder indicators; they are not measured
var DefaultPerformance = []domain.PerformanceMetric{
	{Name: "API Response Time", Value: "< 2s", Status: domain.StatusPassed},
	{Name: "UI Load Time", Value: "< 5s", Status: domain.StatusPassed},
	{Name: "Memory Usage", Value: "Normal", Status: domain.StatusPassed},
}

// DefaultArtifacts are the runner reports linked from the consolidated report
var DefaultArtifacts = []domain.Artifact{
	{Name: "API Test Report", Path: "./reports/api/api-test-report.html", Type: "HTML Report"},
	{Name: "UI Test Report", Path: "./playwright-report/index.html", Type: "HTML Report"},
	{Name: "Test Screenshots", Path: "./test-results/", Type: "Images"},
	{Name: "Coverage Report", Path: "./coverage/", Type: "Coverage"},
}
