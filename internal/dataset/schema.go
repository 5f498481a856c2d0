package dataset

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/brayanmoyano53/dashboard/internal/errors"
)

// Canonical column names
const (
	ColYear             = "AÑO"
	ColMonth            = "MES"
	ColDepartmentCode   = "COD_DEPARTAMENTO"
	ColDepartmentName   = "DEPARTAMENTO"
	ColMunicipalityCode = "COD_DANE"
	ColMunicipalityName = "MUNICIPIO"
	ColCauseCode        = "COD_MUERTE"
	ColCauseDescription = "DESCRIPCION"
	ColAge              = "GRUPO_EDAD1"
	ColSex              = "SEXO"
)

// Column is one expected column. Headers match on the name or any alias,
// compared without case, accents or repeated spaces.
type Column struct {
	Name    string
	Aliases []string
}

// Schema is the ordered list of columns a table must carry
type Schema struct {
	Name    string
	Columns []Column
}

// MortalitySchema describes the death registrations table
var MortalitySchema = Schema{
	Name: "mortality",
	Columns: []Column{
		{Name: ColYear, Aliases: []string{"ANIO", "YEAR"}},
		{Name: ColMonth},
		{Name: ColDepartmentCode},
		{Name: ColMunicipalityCode},
		{Name: ColCauseCode},
		{Name: ColAge},
		{Name: ColSex},
	},
}

// DivisionSchema describes the DIVIPOLA table
var DivisionSchema = Schema{
	Name: "division",
	Columns: []Column{
		{Name: ColDepartmentCode},
		{Name: ColDepartmentName},
		{Name: ColMunicipalityCode},
		{Name: ColMunicipalityName},
	},
}

// CausesSchema describes the CIE-10 catalogue, distributed with long
// free-text headers
var CausesSchema = Schema{
	Name: "causes",
	Columns: []Column{
		{Name: ColCauseCode, Aliases: []string{"Codigo de la CIE-10 cuatro caracteres"}},
		{Name: ColCauseDescription, Aliases: []string{"Descripcion de codigos mortalidad a cuatro caracteres"}},
	},
}

// Projection gives by-name access to the columns of a validated table
type Projection struct {
	table *Table
	index map[string]int
}

// Validate resolves every schema column against the table header.
// All missing columns are reported in a single SCHEMA error.
func (s Schema) Validate(t *Table) (*Projection, error) {
	if t == nil {
		return nil, errors.NewSchemaError(fmt.Sprintf("%s table is nil", s.Name), nil)
	}

	headers := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		key := foldHeader(h)
		if _, seen := headers[key]; !seen {
			headers[key] = i
		}
	}

	p := &Projection{table: t, index: make(map[string]int, len(s.Columns))}
	var missing []string
	for _, col := range s.Columns {
		idx, ok := col.lookup(headers)
		if !ok {
			missing = append(missing, col.Name)
			continue
		}
		p.index[col.Name] = idx
	}

	if len(missing) > 0 {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("%s table is missing columns: %s", s.Name, strings.Join(missing, ", ")), nil).
			WithContext("table", t.Name).
			WithContext("missing_columns", missing)
	}
	return p, nil
}

func (c Column) lookup(headers map[string]int) (int, bool) {
	if idx, ok := headers[foldHeader(c.Name)]; ok {
		return idx, true
	}
	for _, alias := range c.Aliases {
		if idx, ok := headers[foldHeader(alias)]; ok {
			return idx, true
		}
	}
	return 0, false
}

// Len returns the number of data rows
func (p *Projection) Len() int {
	return p.table.Len()
}

// Value returns the cell of the named column, or "" for short rows
func (p *Projection) Value(row int, column string) string {
	idx, ok := p.index[column]
	if !ok {
		return ""
	}
	cells := p.table.Rows[row]
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// foldHeader strips accents, collapses whitespace and uppercases
func foldHeader(h string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, h)
	if err != nil {
		folded = h
	}
	return strings.ToUpper(strings.Join(strings.Fields(folded), " "))
}
