package main

import (
	"io"
	"os"

	"ctr/internal/cli"
	"ctr/internal/cli/commands"
	"ctr/internal/config"
	"ctr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

// errOutput receives fatal errors
var errOutput io.Writer = color.Error

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "ctr",
		Short:         "Consolidated test report generator",
		Long:          `Collects the JSON results of API, UI and other test runners into one HTML report and JSON summary. Exits non-zero when any test failed, so it can gate a CI pipeline.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetArgs(args)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	err := rootCmd.Execute()
	if cli.ShouldPrint(err) {
		ui.NewLoggerWithWriters(color.Output, errOutput, cfg.Debug(), false).Errorf("%v", err)
	}
	return cli.ExitCode(err)
}
