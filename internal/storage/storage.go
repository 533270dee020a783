package storage

import (
	"ctr/internal/config"
	"ctr/internal/domain"
)

// Storage reads runner result files and persists the consolidated report.
type Storage interface {
	// ReadResult returns the raw result document, or nil without error when the file does not exist.
	ReadResult(path string) ([]byte, error)
	// SaveReport writes index.html and summary.json into the report directory and the top-level HTML copy.
	SaveReport(html, summary []byte) error
	// LoadReport reads the last written summary.json.
	LoadReport() (*domain.Report, error)
}

// JSONStorage stores the report as flat files under the configured report directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's report paths.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
