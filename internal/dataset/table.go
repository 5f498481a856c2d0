package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/brayanmoyano53/dashboard/internal/errors"
)

// Encoding names the character encoding of a CSV source
type Encoding string

const (
	EncodingLatin1 Encoding = "latin1"
	EncodingUTF8   Encoding = "utf-8"
)

// latin1BOM is the UTF-8 byte order mark as it reads after a Latin-1 decode
const latin1BOM = "ï»¿"

// Table is a raw string table. Rows may be shorter than the header.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ReadCSV reads a comma separated table whose first record is the header
func ReadCSV(r io.Reader, name string, enc Encoding) (*Table, error) {
	var src io.Reader
	switch enc {
	case EncodingLatin1, "":
		src = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case EncodingUTF8:
		src = r
	default:
		return nil, errors.NewConfigError(fmt.Sprintf("unsupported encoding %q", enc), nil)
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to parse %s as CSV", name), err)
	}

	return newTable(name, records), nil
}

// ReadXLSX reads the first sheet of a workbook
func ReadXLSX(r io.Reader, name string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to open workbook %s", name), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("workbook %s has no sheets", name), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q of %s", sheets[0], name), err)
	}

	return newTable(name, rows), nil
}

func newTable(name string, records [][]string) *Table {
	t := &Table{Name: name}
	if len(records) == 0 {
		return t
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
			h = strings.TrimPrefix(h, latin1BOM)
		}
		header[i] = strings.TrimSpace(h)
	}
	t.Header = header

	for _, row := range records[1:] {
		if isBlankRow(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
