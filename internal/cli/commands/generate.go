package commands

import (
	"fmt"

	"ctr/internal/config"
	"ctr/internal/domain"
	"ctr/internal/parser"
	"ctr/internal/report"
	"ctr/internal/storage"
	"ctr/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	quiet := gc.config.Flags.Quiet
	logger := ui.NewLogger(gc.config.Debug(), quiet)

	aggregator := report.NewAggregator(
		gc.storage,
		parser.NewRegistry(gc.config.Browsers),
		logger,
		report.WithPerformance(gc.config.Performance),
		report.WithArtifacts(gc.config.Artifacts),
	)

	sources := gc.config.Sources
	if err := aggregator.CheckSources(sources); err != nil {
		return err
	}

	logger.Infof("Generating consolidated test report...")
	if !quiet && len(sources) > 0 {
		aggregator.SetProgress(ui.NewProgressBar(len(sources)))
	}

	rep, err := aggregator.Generate(sources, gc.storage)
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	if !quiet {
		gc.formatter.PrintSummary(rep, gc.config.GetIndexPath())
	}

	if rep.Summary.FailedTests > 0 {
		return domain.ErrTestsFailed
	}
	return nil
}
