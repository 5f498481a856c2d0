package config

import "time"

// Application constants
const (
	AppName    = "Mortalidad Colombia"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. MORTALIDAD_PIPELINE_YEAR
	EnvPrefix = "MORTALIDAD"

	// Default input file names, relative to the data directory
	DefaultDataDir       = "data"
	DefaultMortalityFile = "datosmortalidad.csv"
	DefaultDivisionFile  = "divipola.csv"
	DefaultCausesFile    = "Codigosmuerte.csv"
	DefaultGeoFile       = "Colombia.geo.json"

	DefaultOutputDir = "data/views"
	DefaultLogFile   = "logs/dashboard.log"

	// Pipeline defaults
	DefaultYear              = 2019
	DefaultTopViolentCities  = 5
	DefaultTopLeastMortality = 10
	DefaultTopCauses         = 10
	DefaultMonthLocale       = "es"

	// Server defaults
	DefaultPort            = 8050
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// Input encodings accepted for the CSV sources
const (
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf-8"
)

// Output formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)
