// SPDX-License-Identifier: MIT
//
// File: exporter.go
// Role: Exporter boundary and the file-backed implementation.

package export

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/katalvlaran/colexnet/results"
)

// ErrNilView is returned when an exporter receives a nil View.
var ErrNilView = errors.New("export: nil view")

// Exporter consumes finished views.
type Exporter interface {
	Export(ctx context.Context, v *View) error
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(ctx context.Context, v *View) error

// Export calls f(ctx, v).
func (f ExporterFunc) Export(ctx context.Context, v *View) error { return f(ctx, v) }

// FileExporter writes each view to Dir/network_<name>.<ext>, where name is
// the sanitized full focus ID, so concepts sharing a display label but not
// a definition get distinct files. Format defaults to JSON.
type FileExporter struct {
	Dir    string
	Format results.Format
}

// Path returns the destination file of v.
func (fe FileExporter) Path(v *View) string {
	f := fe.Format
	if f == "" {
		f = results.JSON
	}
	name := "network_" + FileName(v.Focus) + f.Ext()
	return filepath.Join(fe.Dir, name)
}

// Export persists v through results.Persist.
func (fe FileExporter) Export(ctx context.Context, v *View) error {
	if v == nil {
		return ErrNilView
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return results.Persist(v, fe.Path(v))
}

// FileName maps s to a portable file name component: letters, digits, '-',
// '_' and '.' are kept, everything else becomes '_'.
func FileName(s string) string {
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, s)
}
