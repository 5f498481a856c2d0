package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/brayanmoyano53/dashboard/internal/config"
	"github.com/brayanmoyano53/dashboard/internal/dataprocessing"
	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/internal/exporter"
	"github.com/brayanmoyano53/dashboard/internal/infrastructure"
	customMiddleware "github.com/brayanmoyano53/dashboard/internal/middleware"
	"github.com/brayanmoyano53/dashboard/internal/services"
	handlers "github.com/brayanmoyano53/dashboard/internal/transport/http"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// Output file names for the single-file formats
const (
	WorkbookFile = "views.xlsx"
	JSONFile     = "views.json"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.Metrics

	Dashboard *services.DashboardService
	Views     *services.ViewsService
	Health    *services.HealthService

	Router *chi.Mux
	Server *http.Server
}

// NewApplication creates a new application instance with dependency injection
func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, errors.NewConfigError("configuration is required", nil)
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFromTelemetry(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateMetrics(otelProviders.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
		Metrics:       metrics,
	}
	app.initializeServices()

	return app, nil
}

// initializeServices creates the loader, pipeline and services
func (a *Application) initializeServices() {
	loader := dataset.NewLoader(a.Logger, a.Metrics)
	pipeline := dataprocessing.NewPipeline(a.Logger, PipelineConfig(a.Config.Pipeline),
		dataprocessing.WithTracer(a.OTelProviders.Tracer),
		dataprocessing.WithMetrics(a.Metrics),
	)

	a.Dashboard = services.NewDashboardService(loader, pipeline, a.Logger)
	a.Views = services.NewViewsService(nil, a.Logger)
	a.Health = services.NewHealthService(config.AppVersion, a.Config.Output.Dir, a.Views, a.Logger)
}

// PipelineConfig maps the configuration section onto the pipeline parameters
func PipelineConfig(cfg config.PipelineConfig) dataprocessing.PipelineConfig {
	return dataprocessing.PipelineConfig{
		Year:              cfg.Year,
		TopViolent:        cfg.TopViolentCities,
		TopLeastMortality: cfg.TopLeastMortality,
		TopCauses:         cfg.TopCauses,
		MonthLocale:       cfg.MonthLocale,
	}
}

// Sources resolves the input file locations of cfg
func Sources(cfg config.InputsConfig) dataset.Sources {
	return dataset.Sources{
		Mortality: cfg.InputPath(cfg.Mortality),
		Division:  cfg.InputPath(cfg.Division),
		Causes:    cfg.InputPath(cfg.Causes),
		Geo:       cfg.InputPath(cfg.Geo),
		Encoding:  dataset.Encoding(cfg.Encoding),
	}
}

// Compute loads the inputs and computes the views. The result replaces the
// views served over HTTP.
func (a *Application) Compute(ctx context.Context) (*services.Result, error) {
	result, err := a.Dashboard.Compute(ctx, Sources(a.Config.Inputs))
	if err != nil {
		return nil, err
	}

	a.Views = services.NewViewsService(result, a.Logger)
	a.Health = services.NewHealthService(config.AppVersion, a.Config.Output.Dir, a.Views, a.Logger)
	a.Router = nil
	return result, nil
}

// Export writes the views in every configured format and returns the written paths
func (a *Application) Export(ctx context.Context, views *domain.Views) ([]string, error) {
	out := a.Config.Output
	var paths []string

	if out.HasFormat(config.FormatCSV) {
		written, err := exporter.NewCSVWriter(out.Dir, a.Logger).WithBOM(out.BOMPrefix).WriteViews(ctx, views)
		if err != nil {
			return paths, err
		}
		paths = append(paths, written...)
	}

	if out.HasFormat(config.FormatXLSX) {
		path := filepath.Join(out.Dir, WorkbookFile)
		if err := exporter.NewWorkbookWriter(a.Logger).Write(ctx, path, views); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	if out.HasFormat(config.FormatJSON) {
		path := filepath.Join(out.Dir, JSONFile)
		if err := exporter.WriteJSON(ctx, a.Logger, path, views); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	a.Logger.InfoContext(ctx, "Views exported",
		slog.String("dir", out.Dir),
		slog.Any("formats", out.Formats),
		slog.Int("file_count", len(paths)))
	return paths, nil
}

// Handler returns the HTTP handler, building the router on first use
func (a *Application) Handler() http.Handler {
	if a.Router == nil {
		a.setupRouter()
	}
	return a.Router
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()

	// RequestID → RealIP → OTel → Logger → Recoverer → rate limit
	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	if otelMiddleware, err := customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics); err != nil {
		infrastructure.WithError(a.Logger, err).Error("Failed to create OpenTelemetry middleware")
	} else {
		r.Use(otelMiddleware.Handler)
	}

	errorHandler := errors.NewErrorHandler(a.Logger, false)

	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(errorHandler))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{}))
	r.Use(customMiddleware.RateLimit(a.Config.Security.RateLimit, a.Logger))

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	viewsHandler := handlers.NewViewsHandler(a.Views, a.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(a.Health, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Mount("/views", viewsHandler.Routes())
		r.Mount("/geo", viewsHandler.GeoRoutes())
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.Version)
	})

	r.Handle("/metrics", handlers.NewMetricsHandler(a.OTelProviders.PrometheusHTTP, errorHandler))

	a.Router = r
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Handler(),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Serve listens on the configured port until ctx is cancelled, then shuts down
func (a *Application) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", a.Config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return a.ServeListener(ctx, listener)
}

// ServeListener serves on listener until ctx is cancelled
func (a *Application) ServeListener(ctx context.Context, listener net.Listener) error {
	a.createServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Server.Serve(listener)
	}()

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", listener.Addr().String()))

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
		a.Logger.InfoContext(ctx, "Received shutdown signal")
	}

	return a.Stop(context.Background())
}

// Stop gracefully stops the server and flushes telemetry
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownTimeout := a.Config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if a.Server != nil {
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}
