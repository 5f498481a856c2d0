package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// JSONFormat identifies the layout of the JSON export
const JSONFormat = "mortality_views_v1"

// Metadata describes one JSON export
type Metadata struct {
	Format      string    `json:"format"`
	Year        int       `json:"year"`
	Views       []string  `json:"views"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Document is the JSON export layout
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Views    *domain.Views `json:"views"`
}

// NewDocument wraps views with export metadata
func NewDocument(views *domain.Views, now time.Time) Document {
	return Document{
		Metadata: Metadata{
			Format:      JSONFormat,
			Year:        views.Year,
			Views:       domain.ViewNames(),
			GeneratedAt: now.UTC(),
		},
		Views: views,
	}
}

// WriteJSON writes every view and its metadata to path
func WriteJSON(ctx context.Context, logger *slog.Logger, path string, views *domain.Views) error {
	if views == nil {
		return errors.NewAppValidationError("no views to write")
	}
	if logger == nil {
		logger = slog.Default()
	}

	data, err := json.MarshalIndent(NewDocument(views, time.Now()), "", "  ")
	if err != nil {
		return errors.NewStorageError("failed to encode views", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for JSON output", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewStorageError("failed to write JSON file", err).WithContext("path", path)
	}

	logger.InfoContext(ctx, "JSON views written",
		slog.String("component", "json_writer"),
		slog.String("path", path),
		slog.Int("bytes", len(data)))
	return nil
}
