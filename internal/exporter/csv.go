package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	dir       string
	bomPrefix bool
	logger    *slog.Logger
}

// NewCSVWriter creates a writer rooted at dir. The BOM prefix is on by default.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		dir:       dir,
		bomPrefix: true,
		logger:    logger.With(slog.String("component", "csv_writer")),
	}
}

// WithBOM toggles the UTF-8 byte order mark
func (w *CSVWriter) WithBOM(enabled bool) *CSVWriter {
	w.bomPrefix = enabled
	return w
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteViews writes <dir>/<view>.csv for every view and returns the paths
func (w *CSVWriter) WriteViews(ctx context.Context, views *domain.Views) ([]string, error) {
	tables := Tables(views)
	if len(tables) == 0 {
		return nil, errors.NewAppValidationError("no views to write")
	}
	paths := make([]string, 0, len(tables))

	for _, t := range tables {
		name := t.Name + ".csv"
		if err := w.WriteCSV(ctx, name, WriteOptions{
			Headers:   t.Headers,
			Records:   t.Records,
			BOMPrefix: w.bomPrefix,
		}); err != nil {
			return paths, err
		}
		paths = append(paths, w.resolvePath(name))
	}

	w.logger.InfoContext(ctx, "View tables written",
		slog.String("dir", w.dir),
		slog.Int("file_count", len(paths)))
	return paths, nil
}

// WriteCSV writes data to a CSV file, replacing any previous content
func (w *CSVWriter) WriteCSV(ctx context.Context, filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	w.logger.DebugContext(ctx, "Writing CSV file",
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.NewStorageError("failed to open CSV file", err).WithContext("path", fullPath)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return errors.NewStorageError("failed to write CSV header row", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write record %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV file", err)
	}
	return nil
}

// resolvePath resolves relative paths against the writer directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.dir == "" {
		return filePath
	}
	return filepath.Join(w.dir, filePath)
}
