package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"ctr/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Input settings
	Sources []domain.Source

	// Output settings
	ReportDir    string
	RootHTMLFile string

	// Report content
	Browsers    []string
	Performance []domain.PerformanceMetric
	Artifacts   []domain.Artifact

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	EnvFile    string
	APIResults string
	UIResults  string
	ReportDir  string
	RootHTML   string
	Quiet      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ReportDir:    DefaultReportDir,
		RootHTMLFile: DefaultRootHTMLFile,
		Flags: Flags{
			ConfigFile: DefaultConfigFile,
			EnvFile:    DefaultEnvFile,
		},
	}
	// Copy defaults so callers can't mutate the package-level slices
	cfg.Sources = append([]domain.Source(nil), DefaultSources...)
	cfg.Performance = append([]domain.PerformanceMetric(nil), DefaultPerformance...)
	cfg.Artifacts = append([]domain.Artifact(nil), DefaultArtifacts...)
	return cfg
}

// Load creates a config from defaults, the optional YAML file and the dotenv
// file named by flags, then applies flag overrides.
// A config file that was not named explicitly may be absent.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	explicit := flags.ConfigFile != ""
	path := flags.ConfigFile
	if !explicit {
		path = DefaultConfigFile
	}
	if err := cfg.LoadFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, err
		}
	}

	if err := LoadEnv(flags.EnvFile); err != nil {
		return nil, err
	}

	cfg.ApplyFlags(flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads a dotenv file into the process environment. Variables that are
// already set win; a missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyFlags overrides config values with non-empty flags
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.ReportDir != "" {
		c.ReportDir = flags.ReportDir
	}
	if flags.RootHTML != "" {
		c.RootHTMLFile = flags.RootHTML
	}
	if flags.APIResults != "" {
		c.setSourcePath(domain.CategoryAPI, flags.APIResults, "jest")
	}
	if flags.UIResults != "" {
		c.setSourcePath(domain.CategoryUI, flags.UIResults, "playwright")
	}
}

func (c *Config) setSourcePath(category, path, format string) {
	for i := range c.Sources {
		if c.Sources[i].Category == category {
			c.Sources[i].Path = path
			return
		}
	}
	c.Sources = append(c.Sources, domain.Source{Category: category, Path: path, Format: format})
}

// Validate checks that sources are usable and the output paths are set
func (c *Config) Validate() error {
	if c.ReportDir == "" {
		return errors.New("report directory must not be empty")
	}
	if c.RootHTMLFile == "" {
		return errors.New("root HTML file must not be empty")
	}
	seen := make(map[string]bool)
	for i, src := range c.Sources {
		if src.Category == "" {
			return fmt.Errorf("source %d: category is required", i)
		}
		if src.Path == "" {
			return fmt.Errorf("source %q: path is required", src.Category)
		}
		if src.Format == "" {
			return fmt.Errorf("source %q: format is required", src.Category)
		}
		if seen[src.Category] {
			return fmt.Errorf("source %q: duplicate category", src.Category)
		}
		seen[src.Category] = true
	}
	return nil
}

// GetIndexPath returns the path of the HTML report inside the report directory
func (c *Config) GetIndexPath() string {
	return filepath.Join(c.ReportDir, IndexFileName)
}

// GetSummaryPath returns the path of the JSON summary inside the report directory
func (c *Config) GetSummaryPath() string {
	return filepath.Join(c.ReportDir, SummaryFileName)
}

// GetRootHTMLPath returns the top-level HTML copy path
func (c *Config) GetRootHTMLPath() string {
	return filepath.Clean(c.RootHTMLFile)
}

// Debug reports whether debug traces are enabled
func (c *Config) Debug() bool {
	return os.Getenv(DebugEnvVar) != ""
}
