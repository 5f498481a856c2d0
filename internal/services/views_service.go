package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// ViewSummary describes one available view
type ViewSummary struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// ViewTable is a view table as served by the API
type ViewTable struct {
	Name string `json:"name"`
	Year int    `json:"year"`
	Rows any    `json:"rows"`
}

// ViewsService serves the views of one computation. It never mutates them.
type ViewsService struct {
	views      *domain.Views
	boundaries *dataset.Boundaries
	computedAt time.Time
	logger     *slog.Logger
}

// NewViewsService creates a views service over a computed result
func NewViewsService(result *Result, logger *slog.Logger) *ViewsService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ViewsService{
		computedAt: time.Now().UTC(),
		logger:     logger.With(slog.String("service", "views")),
	}
	if result != nil {
		s.views = result.Views
		s.boundaries = result.Boundaries
	}
	return s
}

// Ready reports whether views are available
func (s *ViewsService) Ready() bool {
	return s.views != nil
}

// ComputedAt returns when the service received its views
func (s *ViewsService) ComputedAt() time.Time {
	return s.computedAt
}

// ListViews returns every view name with its row count
func (s *ViewsService) ListViews(ctx context.Context) ([]ViewSummary, error) {
	if !s.Ready() {
		return nil, errors.NewInputError("views have not been computed", nil)
	}

	names := domain.ViewNames()
	summaries := make([]ViewSummary, 0, len(names))
	for _, name := range names {
		rows, _ := s.views.Table(name)
		summaries = append(summaries, ViewSummary{Name: name, Rows: rowCount(rows)})
	}

	s.logger.DebugContext(ctx, "Listed views", slog.Int("count", len(summaries)))
	return summaries, nil
}

// GetView returns one view table by name
func (s *ViewsService) GetView(ctx context.Context, name string) (*ViewTable, error) {
	if !s.Ready() {
		return nil, errors.NewInputError("views have not been computed", nil)
	}

	rows, ok := s.views.Table(name)
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("view %q", name)).WithContext("view", name)
	}

	s.logger.DebugContext(ctx, "Serving view",
		slog.String("view", name),
		slog.Int("rows", rowCount(rows)))

	return &ViewTable{Name: name, Year: s.views.Year, Rows: rows}, nil
}

// Boundaries returns the department boundary document as loaded
func (s *ViewsService) Boundaries(ctx context.Context) (json.RawMessage, error) {
	if s.boundaries == nil || len(s.boundaries.Raw()) == 0 {
		return nil, errors.NewNotFoundError("department boundaries")
	}
	return s.boundaries.Raw(), nil
}

// rowCount returns the length of a view slice, zero for anything else
func rowCount(rows any) int {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice {
		return 0
	}
	return v.Len()
}
