// Package workload reads process lists from CSV and HCL files.
package workload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TigerCipher/cpu-scheduler/internal/ctxlog"
	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

var (
	ErrInvalidWorkload   = errors.New("invalid workload")
	ErrUnsupportedFormat = errors.New("unsupported workload format")
)

// File is a loaded workload. Quantum is 0 unless the file sets one.
type File struct {
	Path      string
	Processes []scheduler.Process
	Quantum   int64
}

// Load reads the workload at path, choosing the parser by file extension.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workload.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workload file: %w", err)
	}

	f := &File{Path: path}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f.Processes, err = ReadCSV(bytes.NewReader(src))
	case ".hcl":
		f.Processes, f.Quantum, err = ParseHCL(src, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Workload loaded.", "path", path, "processes", len(f.Processes), "quantum", f.Quantum)
	return f, nil
}
