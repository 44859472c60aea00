// SPDX-License-Identifier: MIT

// Package results persists analysis outputs (visitation distributions,
// longest-path values, visualization listings) to disk and reads them back.
//
// The format follows the file extension: ".yaml" and ".yml" are written with
// gopkg.in/yaml.v3, everything else as indented JSON. Parent directories are
// created as needed.
package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrIOFailure wraps filesystem errors (unwritable or unreadable paths).
	ErrIOFailure = errors.New("results: io failure")

	// ErrEncode wraps serialization errors in either direction.
	ErrEncode = errors.New("results: encoding failure")

	// ErrEmptyPath is returned for an empty destination.
	ErrEmptyPath = errors.New("results: empty path")
)

// Format names an on-disk encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Ext returns the canonical file extension of f, dot included.
func (f Format) Ext() string {
	if f == YAML {
		return ".yaml"
	}
	return ".json"
}

// Encode serializes value in format f.
func Encode(value any, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(value); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	default:
		data, err = json.MarshalIndent(value, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return data, nil
}

// Persist writes value to path. Returns ErrEncode if value cannot be
// represented and ErrIOFailure if path cannot be written.
func Persist(value any, path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	data, err := Encode(value, FormatFor(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrIOFailure, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIOFailure, path, err)
	}

	return nil
}

// Load decodes the file at path into out, choosing the format the same way
// Persist does.
func Load(path string, out any) error {
	if path == "" {
		return ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIOFailure, path, err)
	}
	switch FormatFor(path) {
	case YAML:
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	return nil
}
