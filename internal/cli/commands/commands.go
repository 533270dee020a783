package commands

import (
	"ctr/internal/cli"
	"ctr/internal/config"
	"ctr/internal/storage"
	"ctr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	Show     *ShowCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewReportViewer()

	return &Commands{
		Generate: NewGenerateCommand(cfg, jsonStorage, formatter),
		Show:     NewShowCommand(cfg, jsonStorage, formatter),
		View:     NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Config is resolved after flag parsing; storage and commands share the cfg pointer
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to the YAML config file (default \"ctr.yaml\" if present)")
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVarP(&flags.ReportDir, "report-dir", "o", "", "Directory for index.html and summary.json (default \""+config.DefaultReportDir+"\")")

	// Generate command
	generateCmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate the consolidated test report",
		Long:    "Read the JSON results of every configured test runner, write index.html and summary.json, and exit non-zero when any test failed",
		RunE:    c.Generate.Execute,
		PreRunE: loadConfig,
	}
	generateCmd.Flags().StringVar(&flags.APIResults, "api-results", "", "Path to the API runner JSON results (default \""+config.DefaultAPIResultsPath+"\")")
	generateCmd.Flags().StringVar(&flags.UIResults, "ui-results", "", "Path to the UI runner JSON results (default \""+config.DefaultUIResultsPath+"\")")
	generateCmd.Flags().StringVar(&flags.RootHTML, "root-html", "", "Top-level copy of the HTML report (default \""+config.DefaultRootHTMLFile+"\")")
	generateCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only print warnings and errors")
	rootCmd.AddCommand(generateCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the statistics of the last report",
		Long:    "Read summary.json from the report directory and print its statistics table",
		RunE:    c.Show.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(showCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "Browse the last report interactively",
		Long:    "Display the categories of the last summary.json in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(viewCmd)
}
