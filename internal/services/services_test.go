package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brayanmoyano53/dashboard/internal/dataprocessing"
	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/internal/shared/testutil"
)

func fixtureSources(files testutil.FixtureFiles) dataset.Sources {
	return dataset.Sources{
		Mortality: files.Mortality,
		Division:  files.Division,
		Causes:    files.Causes,
		Geo:       files.Geo,
		Encoding:  dataset.EncodingUTF8,
	}
}

func newDashboardService(t *testing.T) *DashboardService {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	pipeline := dataprocessing.NewPipeline(logger, dataprocessing.DefaultPipelineConfig())
	return NewDashboardService(dataset.NewLoader(logger, nil), pipeline, logger)
}

func computeFixture(t *testing.T) *Result {
	t.Helper()
	files := testutil.WriteFixtureFiles(t)
	result, err := newDashboardService(t).Compute(context.Background(), fixtureSources(files))
	require.NoError(t, err)
	return result
}
