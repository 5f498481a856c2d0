// Package dataset reads the raw input tables of the mortality dashboard.
//
// It is the raw-bytes-in, table-out boundary: CSV files (Latin-1 or UTF-8),
// the cause-code workbook and the department boundary document are turned
// into string tables and validated against explicit column schemas. No value
// is coerced here; typed records are built by the dataprocessing package.
package dataset
