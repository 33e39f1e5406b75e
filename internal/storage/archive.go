package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/politico94/infradigest/internal/digest"
)

// Record is one archived digest run: the categorized result, the two
// synthesized texts and the run statistics.
type Record struct {
	Date     string                   `json:"date"`
	Pulse    string                   `json:"pulse"`
	Outlook  string                   `json:"outlook"`
	Sections map[string][]digest.Item `json:"sections"`
	Stats    digest.Stats             `json:"stats"`
}

// FileArchive persists digest runs as one JSON file per day.
type FileArchive struct {
	dir string
}

func NewFileArchive(dir string) *FileArchive {
	return &FileArchive{dir: dir}
}

// Save writes the record to <dir>/digest-<date>.json, creating the archive
// directory on first use.
func (a *FileArchive) Save(rec Record) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive dir: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal archive record: %w", err)
	}

	path := filepath.Join(a.dir, fmt.Sprintf("digest-%s.json", rec.Date))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write archive file: %w", err)
	}
	return path, nil
}

// Load reads one archived run back, mostly for tests and tooling.
func (a *FileArchive) Load(date string) (*Record, error) {
	path := filepath.Join(a.dir, fmt.Sprintf("digest-%s.json", date))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archive record: %w", err)
	}
	return &rec, nil
}
