package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/internal/infrastructure"
)

// Table names used in logs, metrics and errors
const (
	TableMortality = "mortality"
	TableDivision  = "division"
	TableCauses    = "causes"
	TableGeo       = "geo"
)

// Sources locates the four inputs of a run
type Sources struct {
	Mortality string
	Division  string
	Causes    string
	Geo       string
	Encoding  Encoding
}

// Inputs holds the loaded raw tables
type Inputs struct {
	Mortality *Table
	Division  *Table
	Causes    *Table
	Geo       *Boundaries
}

// Loader reads the input files of a run
type Loader struct {
	logger  *slog.Logger
	metrics *infrastructure.Metrics
}

// NewLoader creates a loader. metrics may be nil.
func NewLoader(logger *slog.Logger, metrics *infrastructure.Metrics) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  infrastructure.WithComponent(logger, "dataset_loader"),
		metrics: metrics,
	}
}

// LoadAll reads the four inputs concurrently. A missing, unreadable or empty
// input fails the whole load with an INPUT error.
func (l *Loader) LoadAll(ctx context.Context, src Sources) (*Inputs, error) {
	start := time.Now()
	inputs := &Inputs{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := l.loadTable(gctx, TableMortality, src.Mortality, src.Encoding)
		inputs.Mortality = t
		return err
	})
	g.Go(func() error {
		t, err := l.loadTable(gctx, TableDivision, src.Division, src.Encoding)
		inputs.Division = t
		return err
	})
	g.Go(func() error {
		t, err := l.loadTable(gctx, TableCauses, src.Causes, src.Encoding)
		inputs.Causes = t
		return err
	})
	g.Go(func() error {
		b, err := l.loadBoundaries(gctx, src.Geo)
		inputs.Geo = b
		return err
	})

	if err := g.Wait(); err != nil {
		l.logger.ErrorContext(ctx, "Input load failed", slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.InfoContext(ctx, "Inputs loaded",
		slog.Int("mortality_rows", inputs.Mortality.Len()),
		slog.Int("division_rows", inputs.Division.Len()),
		slog.Int("cause_rows", inputs.Causes.Len()),
		slog.Int("geo_features", inputs.Geo.Len()),
		slog.Duration("duration", time.Since(start)))

	return inputs, nil
}

func (l *Loader) loadTable(ctx context.Context, name, path string, enc Encoding) (*Table, error) {
	f, err := openInput(name, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		t, err = ReadXLSX(f, name)
	default:
		t, err = ReadCSV(f, name, enc)
	}
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to read %s input", name), err).
			WithContext("path", path)
	}
	if t.Len() == 0 {
		return nil, errors.NewInputError(fmt.Sprintf("%s input has no rows", name), nil).
			WithContext("path", path)
	}

	infrastructure.RecordInputRows(ctx, l.metrics, name, t.Len())
	l.logger.DebugContext(ctx, "Table read",
		slog.String("table", name),
		slog.String("path", path),
		slog.Int("columns", len(t.Header)),
		slog.Int("rows", t.Len()))

	return t, nil
}

func (l *Loader) loadBoundaries(ctx context.Context, path string) (*Boundaries, error) {
	f, err := openInput(TableGeo, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := LoadGeoJSON(f)
	if err != nil {
		return nil, errors.NewInputError("failed to read geo input", err).WithContext("path", path)
	}
	if b.Len() == 0 {
		return nil, errors.NewInputError("geo input has no features", nil).WithContext("path", path)
	}

	infrastructure.RecordInputRows(ctx, l.metrics, TableGeo, b.Len())
	return b, nil
}

func openInput(name, path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.NewInputError(fmt.Sprintf("%s input path is empty", name), nil)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(fmt.Sprintf("%s input not found", name), err).
				WithContext("path", path)
		}
		return nil, errors.NewInputError(fmt.Sprintf("failed to open %s input", name), err).
			WithContext("path", path)
	}
	return f, nil
}
