package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/internal/infrastructure"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// TracerName is the instrumentation scope of pipeline spans
const TracerName = "mortalidad.pipeline"

// PipelineConfig holds the aggregation parameters
type PipelineConfig struct {
	Year              int // 0 disables the year filter
	TopViolent        int
	TopLeastMortality int
	TopCauses         int
	MonthLocale       string
}

// DefaultPipelineConfig returns the dashboard defaults
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Year:              2019,
		TopViolent:        5,
		TopLeastMortality: 10,
		TopCauses:         10,
		MonthLocale:       LocaleSpanish,
	}
}

// Pipeline computes the seven views from a snapshot
type Pipeline struct {
	logger  *slog.Logger
	config  PipelineConfig
	tracer  trace.Tracer
	metrics *infrastructure.Metrics
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithTracer sets the tracer used for run and view spans
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Pipeline) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// WithMetrics enables pipeline metrics
func WithMetrics(metrics *infrastructure.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = metrics
	}
}

// NewPipeline creates a pipeline. Zero top-N values and an empty locale take
// the defaults.
func NewPipeline(logger *slog.Logger, config PipelineConfig, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	defaults := DefaultPipelineConfig()
	if config.TopViolent <= 0 {
		config.TopViolent = defaults.TopViolent
	}
	if config.TopLeastMortality <= 0 {
		config.TopLeastMortality = defaults.TopLeastMortality
	}
	if config.TopCauses <= 0 {
		config.TopCauses = defaults.TopCauses
	}
	if config.MonthLocale == "" {
		config.MonthLocale = defaults.MonthLocale
	}

	p := &Pipeline{
		logger: infrastructure.WithComponent(logger, "pipeline"),
		config: config,
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the effective configuration
func (p *Pipeline) Config() PipelineConfig {
	return p.config
}

// Run filters the snapshot to the configured year and computes every view in
// sequence. The snapshot is not modified, so repeated runs return identical
// tables.
func (p *Pipeline) Run(ctx context.Context, snap *Snapshot) (views *domain.Views, err error) {
	if snap == nil {
		return nil, errors.NewAppValidationError("pipeline snapshot is nil")
	}

	runID := uuid.New().String()
	start := time.Now()

	ctx, span := p.tracer.Start(ctx, "pipeline.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("pipeline.run_id", runID),
			attribute.Int("pipeline.year", p.config.Year),
			attribute.Int("pipeline.records", len(snap.Records)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "views computed")
		}
		span.End()
		infrastructure.RecordPipelineRun(ctx, p.metrics, time.Since(start), err)
	}()

	logger := p.logger.With(slog.String("run_id", runID))
	filtered := snap.ForYear(p.config.Year)

	logger.InfoContext(ctx, "Pipeline run started",
		slog.Int("year", p.config.Year),
		slog.Int("records", len(snap.Records)),
		slog.Int("records_in_year", len(filtered.Records)))

	if len(filtered.Records) == 0 {
		logger.WarnContext(ctx, "No mortality records for configured year", slog.Int("year", p.config.Year))
	}

	departments := ResolveDepartments(filtered.Divisions)
	municipalities := ResolveMunicipalities(filtered.Divisions)
	causes := ResolveCauses(filtered.Causes)
	assembler := NewAssembler(departments, causes, p.config.MonthLocale)

	logger.DebugContext(ctx, "Reference directories resolved",
		slog.Int("departments", departments.Len()),
		slog.Int("municipalities", municipalities.Len()),
		slog.Int("causes", causes.Len()))

	records := filtered.Records
	views = &domain.Views{Year: p.config.Year}
	mappedDeaths := 0

	steps := []struct {
		name    string
		compute func() (rows, excluded int)
	}{
		{domain.ViewMap, func() (int, int) {
			t := CountByDepartment(records)
			mappedDeaths = t.Sum()
			views.Map = assembler.Map(t)
			return len(views.Map), t.Excluded
		}},
		{domain.ViewMonthly, func() (int, int) {
			t := CountByMonth(records)
			views.Monthly = assembler.Monthly(t)
			return len(views.Monthly), t.Excluded
		}},
		{domain.ViewViolentCities, func() (int, int) {
			t := CountHomicidesByMunicipality(records, municipalities)
			views.ViolentCities = assembler.ViolentCities(TopN(t.Counts, p.config.TopViolent, Descending))
			return len(views.ViolentCities), t.Excluded
		}},
		{domain.ViewLeastMortality, func() (int, int) {
			t := CountByMunicipality(records, municipalities)
			views.LeastMortality = assembler.LeastMortality(TopN(t.Counts, p.config.TopLeastMortality, Ascending))
			return len(views.LeastMortality), t.Excluded
		}},
		{domain.ViewTopCauses, func() (int, int) {
			t := CountByCause(records)
			views.TopCauses = assembler.TopCauses(DenseRank(TopN(t.Counts, p.config.TopCauses, Descending)))
			return len(views.TopCauses), t.Excluded
		}},
		{domain.ViewAgeDistribution, func() (int, int) {
			t := CountByAgeBand(records)
			views.AgeDistribution = assembler.AgeDistribution(t)
			return len(views.AgeDistribution), t.Excluded
		}},
		{domain.ViewDepartmentSex, func() (int, int) {
			t := CountByDepartmentSex(records)
			views.DepartmentSex = assembler.DepartmentSex(t)
			return len(views.DepartmentSex), t.Excluded
		}},
	}

	for _, step := range steps {
		p.computeView(ctx, logger, step.name, step.compute)
	}

	if missing := UnmappedDepartments(views.Map, filtered.FeatureIDs); len(missing) > 0 && len(filtered.FeatureIDs) > 0 {
		logger.WarnContext(ctx, "Departments without boundary feature",
			slog.Any("department_codes", missing))
	}

	logger.InfoContext(ctx, "Pipeline run completed",
		slog.Int("mapped_deaths", mappedDeaths),
		slog.Duration("duration", time.Since(start)))

	return views, nil
}

func (p *Pipeline) computeView(ctx context.Context, logger *slog.Logger, name string, compute func() (int, int)) {
	ctx, span := p.tracer.Start(ctx, fmt.Sprintf("pipeline.view.%s", name),
		trace.WithAttributes(attribute.String("pipeline.view", name)))
	defer span.End()

	start := time.Now()
	rows, excluded := compute()
	duration := time.Since(start)

	span.SetAttributes(
		attribute.Int("view.rows", rows),
		attribute.Int("view.excluded_records", excluded),
	)
	infrastructure.RecordViewMetrics(ctx, p.metrics, name, duration, rows)
	infrastructure.RecordDropped(ctx, p.metrics, name, "uncoercible_key", excluded)

	logger.InfoContext(ctx, "View computed",
		slog.String("view", name),
		slog.Int("rows", rows),
		slog.Int("excluded_records", excluded),
		slog.Duration("duration", duration))
}
