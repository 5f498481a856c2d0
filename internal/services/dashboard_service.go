package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/brayanmoyano53/dashboard/internal/dataprocessing"
	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// Result is the outcome of one dashboard computation
type Result struct {
	Views      *domain.Views
	Boundaries *dataset.Boundaries
	Records    int
	Duration   time.Duration
}

// DashboardService loads the inputs and runs the pipeline over them
type DashboardService struct {
	loader   *dataset.Loader
	pipeline *dataprocessing.Pipeline
	logger   *slog.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(loader *dataset.Loader, pipeline *dataprocessing.Pipeline, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		loader:   loader,
		pipeline: pipeline,
		logger:   logger.With(slog.String("service", "dashboard")),
	}
}

// Compute loads every input, builds the snapshot and computes the views.
// Any load or schema failure aborts the computation.
func (s *DashboardService) Compute(ctx context.Context, src dataset.Sources) (*Result, error) {
	start := time.Now()

	inputs, err := s.loader.LoadAll(ctx, src)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load inputs", slog.String("error", err.Error()))
		return nil, err
	}

	snap, err := dataprocessing.BuildSnapshot(inputs)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build snapshot", slog.String("error", err.Error()))
		return nil, err
	}

	views, err := s.pipeline.Run(ctx, snap)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Views:      views,
		Boundaries: snap.Boundaries,
		Records:    len(snap.Records),
		Duration:   time.Since(start),
	}

	s.logger.InfoContext(ctx, "Dashboard computed",
		slog.Int("records", result.Records),
		slog.Int("year", views.Year),
		slog.Duration("duration", result.Duration))
	return result, nil
}
