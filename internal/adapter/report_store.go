package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/lograft/internal/model"
)

// reportVersion is bumped whenever the on-disk layout changes.
const reportVersion = 1

// ReportStore persists rewrite reports.
type ReportStore interface {
	SaveReports(ctx context.Context, path m.Path, reports []m.Report) error
	LoadReports(ctx context.Context, path m.Path) ([]m.Report, error)
}

type reportDocument struct {
	Version int        `yaml:"version"`
	Files   []m.Report `yaml:"files"`
}

// YAMLReportStore stores reports as a single YAML document.
type YAMLReportStore struct{}

// NewReportStore constructs the default ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReports writes reports to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReports(ctx context.Context, path m.Path, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(reportDocument{Version: reportVersion, Files: reports})
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	return nil
}

// LoadReports reads reports previously written by SaveReports.
func (s *YAMLReportStore) LoadReports(ctx context.Context, path m.Path) ([]m.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is the report location chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	if doc.Version != reportVersion {
		return nil, fmt.Errorf("unsupported report version %d", doc.Version)
	}

	return doc.Files, nil
}
