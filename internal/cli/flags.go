package cli

import "ctr/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		EnvFile:    f.EnvFile,
		APIResults: f.APIResults,
		UIResults:  f.UIResults,
		ReportDir:  f.ReportDir,
		RootHTML:   f.RootHTML,
		Quiet:      f.Quiet,
	}
}
