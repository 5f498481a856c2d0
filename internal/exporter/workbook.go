package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// defaultSheet is the sheet excelize creates with every new file
const defaultSheet = "Sheet1"

// WorkbookWriter writes every view into one workbook, one sheet per view
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger.With(slog.String("component", "workbook_writer"))}
}

// Write saves the workbook at path
func (w *WorkbookWriter) Write(ctx context.Context, path string, views *domain.Views) error {
	tables := Tables(views)
	if len(tables) == 0 {
		return errors.NewAppValidationError("no views to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return errors.NewStorageError("failed to rename sheet", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to create sheet %s", t.Name), err)
		}

		if err := writeSheet(f, t); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for workbook", err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "Workbook written",
		slog.String("path", path),
		slog.Int("sheet_count", len(tables)))
	return nil
}

func writeSheet(f *excelize.File, t ViewTable) error {
	head := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		head[i] = h
	}
	if err := f.SetSheetRow(t.Name, "A1", &head); err != nil {
		return errors.NewStorageError("failed to write sheet header", err).WithContext("sheet", t.Name)
	}

	for i, record := range t.Records {
		row := make([]any, len(record))
		for j, value := range record {
			row[j] = cellValue(t.Headers[j], value)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("invalid cell reference", err)
		}
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return errors.NewStorageError("failed to write sheet row", err).WithContext("sheet", t.Name)
		}
	}
	return nil
}

// cellValue keeps count columns numeric. Codes stay text so leading zeros survive.
func cellValue(header, value string) any {
	if !isCountColumn(header) {
		return value
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

func isCountColumn(header string) bool {
	return strings.HasPrefix(header, "TOTAL_") || header == "MES" || header == "RANK"
}
