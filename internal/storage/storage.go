package storage

import (
	"bbunit/internal/config"
	"bbunit/internal/domain"
)

// Storage persists and loads run reports
type Storage interface {
	Save(report domain.RunReport) error
	Load() (*domain.RunResultsOutput, error)
}

// JSONStorage stores reports in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
