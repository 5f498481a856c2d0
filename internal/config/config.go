package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/brayanmoyano53/dashboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Security  SecurityConfig  `yaml:"security" envconfig:"SECURITY"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Inputs    InputsConfig    `yaml:"inputs" envconfig:"INPUTS"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Pipeline  PipelineConfig  `yaml:"pipeline" envconfig:"PIPELINE"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Enabled         bool          `yaml:"enabled" envconfig:"ENABLED"`
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gt=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// InputsConfig locates the four source files.
// Relative file names are resolved against DataDir.
type InputsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR"`
	Mortality string `yaml:"mortality" envconfig:"MORTALITY" validate:"required"`
	Division  string `yaml:"division" envconfig:"DIVISION" validate:"required"`
	Causes    string `yaml:"causes" envconfig:"CAUSES" validate:"required"`
	Geo       string `yaml:"geo" envconfig:"GEO" validate:"required"`
	Encoding  string `yaml:"encoding" envconfig:"ENCODING" validate:"oneof=latin1 utf-8"`
}

// OutputConfig controls where and how the view tables are exported
type OutputConfig struct {
	Dir       string   `yaml:"dir" envconfig:"DIR" validate:"required"`
	Formats   []string `yaml:"formats" envconfig:"FORMATS" validate:"dive,oneof=csv xlsx json"`
	BOMPrefix bool     `yaml:"bom_prefix" envconfig:"BOM_PREFIX"`
}

// PipelineConfig contains the aggregation parameters.
// Year 0 disables the year filter.
type PipelineConfig struct {
	Year              int    `yaml:"year" envconfig:"YEAR" validate:"min=0"`
	TopViolentCities  int    `yaml:"top_violent_cities" envconfig:"TOP_VIOLENT_CITIES" validate:"min=1"`
	TopLeastMortality int    `yaml:"top_least_mortality" envconfig:"TOP_LEAST_MORTALITY" validate:"min=1"`
	TopCauses         int    `yaml:"top_causes" envconfig:"TOP_CAUSES" validate:"min=1"`
	MonthLocale       string `yaml:"month_locale" envconfig:"MONTH_LOCALE" validate:"oneof=es en"`
}

// TelemetryConfig contains OpenTelemetry configuration
type TelemetryConfig struct {
	ServiceName    string  `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	Environment    string  `yaml:"environment" envconfig:"ENVIRONMENT"`
	TraceExporter  string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
	MetricExporter string  `yaml:"metric_exporter" envconfig:"METRIC_EXPORTER" validate:"oneof=prometheus none"`
	SampleRatio    float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
}

// Load builds the configuration from defaults, an optional YAML file and
// MORTALIDAD_* environment variables, in increasing order of precedence.
// An empty path falls back to the well-known config file locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getConfigFilePath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, errors.NewConfigError("failed to load config file", err).WithContext("path", path)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file on cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks struct constraints and reports every violation at once
func (c *Config) Validate() error {
	v := validator.New()
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewConfigError("config validation failed", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewConfigError("config validation failed", fmt.Errorf("%s", strings.Join(problems, "; "))).
		WithContext("violations", problems)
}

// InputPath resolves an input file name against the data directory
func (c *InputsConfig) InputPath(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// HasFormat reports whether the output format is enabled
func (c *OutputConfig) HasFormat(format string) bool {
	for _, f := range c.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Enabled:         false,
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Security: SecurityConfig{
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Inputs: InputsConfig{
			DataDir:   DefaultDataDir,
			Mortality: DefaultMortalityFile,
			Division:  DefaultDivisionFile,
			Causes:    DefaultCausesFile,
			Geo:       DefaultGeoFile,
			Encoding:  EncodingLatin1,
		},
		Output: OutputConfig{
			Dir:       DefaultOutputDir,
			Formats:   []string{FormatCSV},
			BOMPrefix: true,
		},
		Pipeline: PipelineConfig{
			Year:              DefaultYear,
			TopViolentCities:  DefaultTopViolentCities,
			TopLeastMortality: DefaultTopLeastMortality,
			TopCauses:         DefaultTopCauses,
			MonthLocale:       DefaultMonthLocale,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "mortalidad-dashboard",
			Environment:    "development",
			TraceExporter:  "none",
			MetricExporter: "prometheus",
			SampleRatio:    1.0,
		},
	}
}
