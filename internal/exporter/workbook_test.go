package exporter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

func TestWorkbookWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "views.xlsx")

	err := NewWorkbookWriter(nil).Write(context.Background(), path, sampleViews())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, domain.ViewNames(), f.GetSheetList())

	rows, err := f.GetRows(domain.ViewMap)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"COD_DEPARTAMENTO", "DEPARTAMENTO", "TOTAL_MUERTES"},
		{"05", "ANTIOQUIA", "4"},
		{"11", "BOGOTA, D.C.", "2"},
	}, rows)

	cellType, err := f.GetCellType(domain.ViewMap, "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestWorkbookWriter_NilViews(t *testing.T) {
	err := NewWorkbookWriter(nil).Write(context.Background(), filepath.Join(t.TempDir(), "v.xlsx"), nil)
	assert.Error(t, err)
}

func TestCellValue(t *testing.T) {
	assert.Equal(t, 4, cellValue("TOTAL_MUERTES", "4"))
	assert.Equal(t, 1, cellValue("RANK", "1"))
	assert.Equal(t, "05", cellValue("COD_DEPARTAMENTO", "05"))
	assert.Equal(t, "n/a", cellValue("TOTAL_MUERTES", "n/a"))
}
