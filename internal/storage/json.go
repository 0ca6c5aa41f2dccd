package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bbunit/internal/domain"
)

// ErrNoOutputPath is returned when no report path is configured.
var ErrNoOutputPath = errors.New("no output path configured")

// Save writes the run report to the configured JSON output file.
func (s *JSONStorage) Save(report domain.RunReport) error {
	output := domain.RunResultsOutput{
		Meta: domain.RunResultsMeta{
			Registered: report.Registered,
			Run:        report.Run,
			Passed:     report.Run - report.Failed,
			Failed:     report.Failed,
			Timestamp:  time.Now().Format(time.RFC3339),
		},
		Details: report.Outcomes,
	}
	if report.Elapsed > 0 {
		output.Meta.Elapsed = report.Elapsed.String()
		output.Meta.ElapsedSeconds = report.Elapsed.Seconds()
	}
	if output.Details == nil {
		output.Details = []domain.Outcome{}
	}

	path := s.cfg.GetOutputPath()
	if path == "" {
		return ErrNoOutputPath
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunResultsOutput, error) {
	path := s.cfg.GetOutputPath()
	if path == "" {
		return nil, ErrNoOutputPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
