package exporter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.json")

	require.NoError(t, WriteJSON(context.Background(), nil, path, sampleViews()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, JSONFormat, doc.Metadata.Format)
	assert.Equal(t, 2019, doc.Metadata.Year)
	assert.Equal(t, domain.ViewNames(), doc.Metadata.Views)
	assert.False(t, doc.Metadata.GeneratedAt.IsZero())
	require.NotNil(t, doc.Views)
	assert.Equal(t, sampleViews().Map, doc.Views.Map)

	var generic map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.Contains(t, generic["views"], "department_sex")
}

func TestNewDocumentUsesUTC(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, loc)

	doc := NewDocument(sampleViews(), now)
	assert.Equal(t, time.UTC, doc.Metadata.GeneratedAt.Location())
	assert.True(t, doc.Metadata.GeneratedAt.Equal(now))
}

func TestWriteJSON_NilViews(t *testing.T) {
	assert.Error(t, WriteJSON(context.Background(), nil, filepath.Join(t.TempDir(), "v.json"), nil))
}
