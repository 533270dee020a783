package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readSummary(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestRun_DefaultPaths(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, "reports", "api", "api-test-results.json"),
		`{"success":true,"numTotalTests":5,"numPassedTests":5,"numFailedTests":0,"testDuration":1200}`)

	code := run([]string{"generate", "--quiet"})
	assert.Equal(t, 0, code)

	doc := readSummary(t, filepath.Join(dir, "consolidated-report", "summary.json"))
	summary := doc["summary"].(map[string]any)
	assert.EqualValues(t, 5, summary["totalTests"])
	assert.EqualValues(t, 100, summary["successRate"])
	api := doc["categories"].(map[string]any)["api"].(map[string]any)
	assert.Equal(t, "passed", api["status"])

	assert.FileExists(t, filepath.Join(dir, "consolidated-report", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "summary-report.html"))
}

func TestRun_FailedTestsExitNonZero(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	uiPath := filepath.Join(dir, "ui.json")
	writeFile(t, uiPath, `{"suites":[{"specs":[{"ok":true},{"ok":false}]}]}`)

	code := run([]string{"generate", "-q", "--ui-results", uiPath, "--report-dir", "out", "--root-html", "site/index.html"})
	assert.Equal(t, 1, code)

	doc := readSummary(t, filepath.Join(dir, "out", "summary.json"))
	assert.EqualValues(t, 1, doc["summary"].(map[string]any)["failedTests"])
	assert.FileExists(t, filepath.Join(dir, "site", "index.html"))
}

func TestRun_NoInputs(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Equal(t, 0, run([]string{"generate", "-q"}))
	assert.FileExists(t, filepath.Join("consolidated-report", "summary.json"))
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, "go-test.json"), `{"Action":"pass","Package":"p","Test":"TestA","Elapsed":0.1}
{"Action":"pass","Package":"p","Elapsed":0.2}`)
	writeFile(t, filepath.Join(dir, "ctr.yaml"), `
reportDir: build
sources:
  - category: go
    path: go-test.json
    format: gotest
`)

	assert.Equal(t, 0, run([]string{"generate", "-q"}))

	doc := readSummary(t, filepath.Join(dir, "build", "summary.json"))
	categories := doc["categories"].(map[string]any)
	assert.Contains(t, categories, "go")
	assert.NotContains(t, categories, "api")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Run("missing explicit config", func(t *testing.T) {
		assert.Equal(t, 1, run([]string{"generate", "-q", "--config", "absent.yaml"}))
	})

	t.Run("unknown source format", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "bad.yaml"), "sources:\n  - {category: x, path: x.json, format: mocha}\n")
		assert.Equal(t, 1, run([]string{"generate", "-q", "--config", "bad.yaml"}))
	})

	t.Run("report dir is a file", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "blocked"), "x")
		assert.Equal(t, 1, run([]string{"generate", "-q", "--report-dir", "blocked"}))
	})

	t.Run("show without report", func(t *testing.T) {
		assert.Equal(t, 1, run([]string{"show", "--report-dir", "nothing-here"}))
	})
}

func TestRun_ErrorOutput(t *testing.T) {
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	orig := errOutput
	errOutput = &buf
	t.Cleanup(func() { errOutput = orig })

	assert.Equal(t, 1, run([]string{"generate", "-q", "--config", "absent.yaml"}))
	assert.Contains(t, buf.String(), "error: ")
	assert.Contains(t, buf.String(), "absent.yaml")
}

func TestRun_TestsFailedIsNotPrinted(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "reports", "api", "api-test-results.json"),
		`{"success":false,"numTotalTests":2,"numPassedTests":1,"numFailedTests":1,"testDuration":10}`)

	var buf bytes.Buffer
	orig := errOutput
	errOutput = &buf
	t.Cleanup(func() { errOutput = orig })

	assert.Equal(t, 1, run([]string{"generate", "-q"}))
	assert.Empty(t, buf.String())
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (equivalent to t.Chdir on Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
