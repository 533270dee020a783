package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"ctr/internal/domain"
)

//go:embed report.html.tmpl
var reportTemplate string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
}).Parse(reportTemplate))

// RenderJSON serializes the report with two-space indentation.
// Map keys are sorted by encoding/json, so equal inputs give equal bytes.
func RenderJSON(report *domain.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return data, nil
}

type namedCategory struct {
	Name string
	domain.CategorySummary
}

type envEntry struct {
	Key   string
	Value string
}

type htmlData struct {
	GeneratedAt string
	Summary     domain.Summary
	AllPassed   bool
	Categories  []namedCategory
	Performance []domain.PerformanceMetric
	Artifacts   []domain.Artifact
	Environment []envEntry
}

// RenderHTML renders the report page. All values are escaped by html/template.
func RenderHTML(report *domain.Report, generatedAt time.Time) ([]byte, error) {
	data := htmlData{
		GeneratedAt: generatedAt.UTC().Format("2006-01-02 15:04:05 MST"),
		Summary:     report.Summary,
		AllPassed:   report.Summary.PassedTests == report.Summary.TotalTests,
		Performance: report.Performance,
		Artifacts:   report.Artifacts,
	}

	names := make([]string, 0, len(report.Categories))
	for name := range report.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		data.Categories = append(data.Categories, namedCategory{Name: name, CategorySummary: report.Categories[name]})
	}

	keys := make([]string, 0, len(report.Environment))
	for k := range report.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		data.Environment = append(data.Environment, envEntry{Key: k, Value: report.Environment[k]})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
