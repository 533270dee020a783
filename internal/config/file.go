package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ctr/internal/domain"
)

// fileConfig is the on-disk YAML shape; empty fields keep the defaults
type fileConfig struct {
	ReportDir   string                     `yaml:"reportDir"`
	RootHTML    string                     `yaml:"rootHtml"`
	Browsers    []string                   `yaml:"browsers"`
	Sources     []domain.Source            `yaml:"sources"`
	Performance []domain.PerformanceMetric `yaml:"performance"`
	Artifacts   []domain.Artifact          `yaml:"artifacts"`
}

// LoadFile merges a YAML config file into c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ReportDir != "" {
		c.ReportDir = fc.ReportDir
	}
	if fc.RootHTML != "" {
		c.RootHTMLFile = fc.RootHTML
	}
	if len(fc.Browsers) > 0 {
		c.Browsers = fc.Browsers
	}
	if len(fc.Sources) > 0 {
		c.Sources = fc.Sources
	}
	if len(fc.Performance) > 0 {
		c.Performance = fc.Performance
	}
	if len(fc.Artifacts) > 0 {
		c.Artifacts = fc.Artifacts
	}
	return nil
}
