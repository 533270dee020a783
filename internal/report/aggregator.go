// Package report builds the consolidated test report from runner result files.
package report

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"ctr/internal/config"
	"ctr/internal/domain"
	"ctr/internal/parser"
)

// Logger receives diagnostics from the aggregation pipeline
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Progress tracks result files as they are collected
type Progress interface {
	Update(loaded, skipped int)
	Finish()
}

// ResultReader reads a runner result file; nil data without error means the file is absent
type ResultReader interface {
	ReadResult(path string) ([]byte, error)
}

// ReportWriter persists the rendered report
type ReportWriter interface {
	SaveReport(html, summary []byte) error
}

// Aggregator turns runner result files into a consolidated report
type Aggregator struct {
	reader      ResultReader
	registry    *parser.Registry
	logger      Logger
	progress    Progress
	performance []domain.PerformanceMetric
	artifacts   []domain.Artifact
	now         func() time.Time
	getenv      func(string) string
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithPerformance sets the performance indicators listed in the report
func WithPerformance(metrics []domain.PerformanceMetric) Option {
	return func(a *Aggregator) { a.performance = metrics }
}

// WithArtifacts sets the artifacts listed in the report
func WithArtifacts(artifacts []domain.Artifact) Option {
	return func(a *Aggregator) { a.artifacts = artifacts }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithEnv replaces os.Getenv
func WithEnv(getenv func(string) string) Option {
	return func(a *Aggregator) { a.getenv = getenv }
}

// NewAggregator creates a new Aggregator
func NewAggregator(reader ResultReader, registry *parser.Registry, logger Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		reader:   reader,
		registry: registry,
		logger:   logger,
		now:      time.Now,
		getenv:   os.Getenv,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetProgress sets the progress tracker used while collecting
func (a *Aggregator) SetProgress(p Progress) {
	a.progress = p
}

// CheckSources reports sources whose format has no parser
func (a *Aggregator) CheckSources(sources []domain.Source) error {
	for _, src := range sources {
		if a.registry.Get(src.Format) == nil {
			return fmt.Errorf("source %q: unknown format %q", src.Category, src.Format)
		}
	}
	return nil
}

// Collect reads and normalizes every source. Missing and malformed files are
// skipped so one bad runner never aborts the report.
func (a *Aggregator) Collect(sources []domain.Source) map[string]domain.CategorySummary {
	categories := make(map[string]domain.CategorySummary, len(sources))
	var loaded, skipped int

	for _, src := range sources {
		summary, err := a.collectOne(src)
		if err != nil {
			skipped++
			if domain.IsKind(err, domain.KindMissingInput) {
				a.logger.Debugf("no %s results at %s", src.Category, src.Path)
			} else {
				a.logger.Warnf("could not read %s: %v", src.Path, err)
			}
		} else {
			loaded++
			categories[src.Category] = summary
		}
		if a.progress != nil {
			a.progress.Update(loaded, skipped)
		}
	}

	if a.progress != nil {
		a.progress.Finish()
	}
	return categories
}

func (a *Aggregator) collectOne(src domain.Source) (domain.CategorySummary, error) {
	p := a.registry.Get(src.Format)
	if p == nil {
		return domain.CategorySummary{}, domain.NewError(domain.KindAggregation, src.Path, fmt.Errorf("unknown format %q", src.Format))
	}

	data, err := a.reader.ReadResult(src.Path)
	if err != nil {
		return domain.CategorySummary{}, err
	}
	if data == nil {
		return domain.CategorySummary{}, domain.NewError(domain.KindMissingInput, src.Path, fmt.Errorf("file does not exist"))
	}

	summary, err := p.Parse(data)
	if err != nil {
		return domain.CategorySummary{}, domain.NewError(domain.KindMalformedInput, src.Path, err)
	}
	return summary, nil
}

// ComputeSummary sums all categories. The success rate is rounded to the
// nearest integer and is 0 when there are no tests.
func ComputeSummary(categories map[string]domain.CategorySummary) domain.Summary {
	var s domain.Summary
	for _, c := range categories {
		s.TotalTests += c.Total
		s.PassedTests += c.Passed
	}
	s.FailedTests = s.TotalTests - s.PassedTests
	if s.TotalTests > 0 {
		s.SuccessRate = int(math.Round(float64(s.PassedTests) / float64(s.TotalTests) * 100))
	}
	return s
}

// Aggregate builds a fresh report from the given sources
func (a *Aggregator) Aggregate(sources []domain.Source) *domain.Report {
	return a.aggregateAt(sources, a.now())
}

func (a *Aggregator) aggregateAt(sources []domain.Source, at time.Time) *domain.Report {
	categories := a.Collect(sources)
	return &domain.Report{
		Summary:     ComputeSummary(categories),
		Categories:  categories,
		Performance: append([]domain.PerformanceMetric{}, a.performance...),
		Artifacts:   append([]domain.Artifact{}, a.artifacts...),
		Environment: a.environment(at),
	}
}

func (a *Aggregator) environment(at time.Time) domain.Environment {
	ci := a.getenv(config.CIEnvVar)
	if ci == "" {
		ci = "false"
	}
	return domain.Environment{
		"Go Version":   runtime.Version(),
		"Platform":     runtime.GOOS,
		"Architecture": runtime.GOARCH,
		"Timestamp":    at.UTC().Format(time.RFC3339),
		"CI":           ci,
	}
}

// Generate runs the whole pipeline: aggregate, render both formats and write them.
// Write failures are returned; nothing after a failed write is attempted.
func (a *Aggregator) Generate(sources []domain.Source, w ReportWriter) (report *domain.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewError(domain.KindAggregation, "", fmt.Errorf("%v", r))
		}
	}()

	at := a.now()
	report = a.aggregateAt(sources, at)

	jsonText, err := RenderJSON(report)
	if err != nil {
		return report, domain.NewError(domain.KindAggregation, "", err)
	}
	html, err := RenderHTML(report, at)
	if err != nil {
		return report, domain.NewError(domain.KindAggregation, "", err)
	}

	if err := w.SaveReport(html, jsonText); err != nil {
		return report, err
	}
	a.logger.Infof("Report written for %d categories", len(report.Categories))
	return report, nil
}
