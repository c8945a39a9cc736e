// Package storage persists the snippet collection to a single file.
//
// The file holds an array of records. JSON is the default and is written
// indented for hand editing; files ending in .yaml or .yml, or a store
// opened with FormatYAML, use YAML instead. Writes go to a temporary file
// that is renamed over the original, so a failed save leaves the previous
// file intact.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dial/internal/snippet"
)

// Format selects the on-disk encoding.
type Format string

// Supported formats. FormatAuto picks by file extension.
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown storage format")

// Persister loads and saves the full record list.
type Persister interface {
	Load() ([]snippet.Record, error)
	Save(records []snippet.Record) error
}

// FileStore is a Persister backed by one file.
type FileStore struct {
	path   string
	format Format
}

// NewFileStore creates a store for path. An empty format is resolved from
// the extension.
func NewFileStore(path string, format Format) (*FileStore, error) {
	switch format {
	case FormatAuto:
		format = formatFor(path)
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &FileStore{path: path, format: format}, nil
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Format returns the resolved encoding.
func (s *FileStore) Format() Format {
	return s.format
}

// Load reads every record. A missing, empty or record-less file yields
// the welcome record.
func (s *FileStore) Load() ([]snippet.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []snippet.Record{snippet.Welcome()}, nil
		}
		return nil, fmt.Errorf("failed to read snippets file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return []snippet.Record{snippet.Welcome()}, nil
	}

	var records []snippet.Record
	if s.format == FormatYAML {
		err = yaml.Unmarshal(data, &records)
	} else {
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snippets: %w", err)
	}

	if len(records) == 0 {
		return []snippet.Record{snippet.Welcome()}, nil
	}
	return records, nil
}

// Save writes every record, replacing the file atomically.
func (s *FileStore) Save(records []snippet.Record) error {
	if records == nil {
		records = []snippet.Record{}
	}

	data, err := s.marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal snippets: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

func (s *FileStore) marshal(records []snippet.Record) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(records)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
