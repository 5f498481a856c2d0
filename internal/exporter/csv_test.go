package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

func readCSV(t *testing.T, path string) ([]byte, [][]string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	body := bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	return raw, records
}

func TestCSVWriter_WriteViews(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, nil)

	paths, err := writer.WriteViews(context.Background(), sampleViews())
	require.NoError(t, err)
	require.Len(t, paths, len(domain.ViewNames()))

	for i, name := range domain.ViewNames() {
		assert.Equal(t, filepath.Join(dir, name+".csv"), paths[i])
		assert.FileExists(t, paths[i])
	}

	raw, records := readCSV(t, filepath.Join(dir, "map.csv"))
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])
	assert.Equal(t, [][]string{
		{"COD_DEPARTAMENTO", "DEPARTAMENTO", "TOTAL_MUERTES"},
		{"05", "ANTIOQUIA", "4"},
		{"11", "BOGOTA, D.C.", "2"},
	}, records)
}

func TestCSVWriter_WithoutBOM(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, nil).WithBOM(false)

	_, err := writer.WriteViews(context.Background(), sampleViews())
	require.NoError(t, err)

	raw, records := readCSV(t, filepath.Join(dir, "least-mortality.csv"))
	assert.Equal(t, "MUNICIPIO", string(raw[:9]))
	assert.Equal(t, []string{"MEDELLÍN", "2"}, records[2])
}

func TestCSVWriter_WriteCSVOverwrites(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, nil)
	ctx := context.Background()

	require.NoError(t, writer.WriteCSV(ctx, "out.csv", WriteOptions{
		Headers: []string{"A"},
		Records: [][]string{{"1"}, {"2"}},
	}))
	require.NoError(t, writer.WriteCSV(ctx, "out.csv", WriteOptions{
		Headers: []string{"A"},
		Records: [][]string{{"3"}},
	}))

	_, records := readCSV(t, filepath.Join(dir, "out.csv"))
	assert.Equal(t, [][]string{{"A"}, {"3"}}, records)
}

func TestCSVWriter_NilViews(t *testing.T) {
	_, err := NewCSVWriter(t.TempDir(), nil).WriteViews(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestCSVWriter_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewCSVWriter(filepath.Join(blocker, "views"), nil).WriteViews(context.Background(), sampleViews())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
