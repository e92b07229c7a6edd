// Package source loads the vehicle collection from an external data source.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parts-pile/vehicles/vehicle"
	"gopkg.in/yaml.v3"
)

// Common errors for loading vehicle files.
var (
	ErrFileNotFound  = errors.New("vehicle file not found")
	ErrEmptyFile     = errors.New("vehicle file is empty")
	ErrInvalidJSON   = errors.New("invalid JSON syntax")
	ErrInvalidYAML   = errors.New("invalid YAML syntax")
	ErrInvalidRecord = errors.New("invalid vehicle record")
)

// Loader supplies the full set of vehicle records.
type Loader interface {
	Load(ctx context.Context) ([]vehicle.Record, error)
}

// FileLoader reads records from a JSON or YAML file.
type FileLoader struct {
	Path string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context) ([]vehicle.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(l.Path)
}

// String describes the loader for logs.
func (l FileLoader) String() string {
	return "file " + l.Path
}

// LoadFile reads a vehicle array from path. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func LoadFile(path string) ([]vehicle.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// ParseJSON decodes and validates a JSON array of records.
func ParseJSON(data []byte) ([]vehicle.Record, error) {
	var records []vehicle.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseYAML decodes and validates a YAML sequence of records.
func ParseYAML(data []byte) ([]vehicle.Record, error) {
	var records []vehicle.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks that every record has a make and a model.
func Validate(records []vehicle.Record) error {
	for i, r := range records {
		if r.Make == "" {
			return fmt.Errorf("%w at index %d: make is required", ErrInvalidRecord, i)
		}
		if r.Model == "" {
			return fmt.Errorf("%w at index %d: model is required", ErrInvalidRecord, i)
		}
	}
	return nil
}
