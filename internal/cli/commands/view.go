package commands

import (
	"ctr/internal/config"
	"ctr/internal/storage"
	"ctr/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, err := vc.storage.LoadReport()
	if err != nil {
		return err
	}

	return vc.viewer.View(rep)
}
