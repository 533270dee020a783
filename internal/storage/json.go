package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ctr/internal/domain"
)

// ReadResult reads a runner result file. A missing file is not an error.
func (s *JSONStorage) ReadResult(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.NewError(domain.KindMalformedInput, path, fmt.Errorf("read result file: %w", err))
	}
	return data, nil
}

// SaveReport writes the HTML report and JSON summary. It stops at the first failure.
func (s *JSONStorage) SaveReport(html, summary []byte) error {
	if err := os.MkdirAll(s.cfg.ReportDir, 0755); err != nil {
		return domain.NewError(domain.KindOutputWrite, s.cfg.ReportDir, fmt.Errorf("create report dir: %w", err))
	}

	files := []struct {
		path string
		data []byte
	}{
		{s.cfg.GetIndexPath(), html},
		{s.cfg.GetSummaryPath(), summary},
		{s.cfg.GetRootHTMLPath(), html},
	}
	for _, f := range files {
		if err := writeFile(f.path, f.data); err != nil {
			return err
		}
	}
	return nil
}

// LoadReport reads the last summary.json from the report directory.
func (s *JSONStorage) LoadReport() (*domain.Report, error) {
	path := s.cfg.GetSummaryPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary file: %w", err)
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse summary %s: %w", path, err)
	}
	return &report, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.NewError(domain.KindOutputWrite, dir, fmt.Errorf("create dir: %w", err))
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.NewError(domain.KindOutputWrite, path, fmt.Errorf("write file: %w", err))
	}
	return nil
}
