package commands

import (
	"ctr/internal/config"
	"ctr/internal/storage"
	"ctr/internal/ui"

	"github.com/spf13/cobra"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, err := sc.storage.LoadReport()
	if err != nil {
		return err
	}

	sc.formatter.PrintSummary(rep, sc.config.GetIndexPath())
	return nil
}
