// Package exporter writes the computed view tables to disk and terminals.
//
// This package contains four components:
//
// CSVWriter: one CSV file per view, with an optional UTF-8 BOM so that
// spreadsheet applications detect the encoding.
//
// WorkbookWriter: a single .xlsx workbook with one sheet per view.
//
// WriteJSON: a single JSON document holding every view plus run metadata.
//
// RenderText: boxed terminal tables for a quick look at the results.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter("data/views", logger)
//	paths, err := writer.WriteViews(ctx, views)
//
//	err = exporter.NewWorkbookWriter(logger).Write(ctx, "data/views/views.xlsx", views)
//
//	err = exporter.RenderText(os.Stdout, views)
package exporter
