package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/brayanmoyano53/dashboard/internal/app"
	"github.com/brayanmoyano53/dashboard/internal/config"
	"github.com/brayanmoyano53/dashboard/internal/exporter"
	"github.com/brayanmoyano53/dashboard/internal/infrastructure"
)

// options holds the command line flags
type options struct {
	configPath string
	outDir     string
	year       int
	format     string
	print      bool
	view       string
	serve      bool
	version    bool
}

// unsetYear marks -year as not given
const unsetYear = -1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to the YAML configuration file")
	fs.StringVar(&opts.outDir, "out", "", "output directory for the view tables (overrides output.dir)")
	fs.IntVar(&opts.year, "year", unsetYear, "registration year to aggregate, 0 for every year (overrides pipeline.year)")
	fs.StringVar(&opts.format, "format", "", "export format: csv, xlsx, json or all (overrides output.formats)")
	fs.BoolVar(&opts.print, "print", false, "print the view tables to stdout")
	fs.StringVar(&opts.view, "view", "", "with -print, print only this view")
	fs.BoolVar(&opts.serve, "serve", false, "serve the views over HTTP until interrupted")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

// applyFlags overlays the flags on cfg. Flags have the highest precedence.
func applyFlags(cfg *config.Config, opts *options) error {
	if opts.outDir != "" {
		cfg.Output.Dir = opts.outDir
	}
	if opts.year != unsetYear {
		cfg.Pipeline.Year = opts.year
	}
	switch strings.ToLower(opts.format) {
	case "":
	case "all":
		cfg.Output.Formats = []string{config.FormatCSV, config.FormatXLSX, config.FormatJSON}
	default:
		cfg.Output.Formats = strings.Split(strings.ToLower(opts.format), ",")
	}
	if opts.serve {
		cfg.Server.Enabled = true
	}
	return cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.AppVersion)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(stderr, "invalid options: %v\n", err)
		return 2
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureTraceID(ctx)

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		infrastructure.WithError(logger, err).Error("Failed to initialize application")
		return 1
	}
	// Serve shuts the providers down itself; a second shutdown is a no-op error
	defer func() { _ = application.OTelProviders.Shutdown(context.Background()) }()

	result, err := application.Compute(ctx)
	if err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Failed to compute views")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	paths, err := application.Export(ctx, result.Views)
	if err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Failed to export views")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, p)
	}

	if opts.print {
		var names []string
		if opts.view != "" {
			names = append(names, opts.view)
		}
		if err := exporter.RenderText(stdout, result.Views, names...); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if cfg.Server.Enabled {
		if err := application.Serve(ctx); err != nil {
			infrastructure.WithError(logger, err).ErrorContext(ctx, "Server stopped with error")
			return 1
		}
	}

	return 0
}
