// Package config provides centralized configuration management for the
// mortality dashboard. It loads configuration from multiple sources, validates
// it and exposes a type-safe API to the rest of the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern MORTALIDAD_<SECTION>_<FIELD>:
//
//	MORTALIDAD_SERVER_PORT=8050
//	MORTALIDAD_INPUTS_DATA_DIR=/srv/data
//	MORTALIDAD_PIPELINE_YEAR=2019
//	MORTALIDAD_LOGGING_LEVEL=debug
//	MORTALIDAD_OUTPUT_FORMATS=csv,xlsx
//
// # Validation
//
// Struct constraints are checked with go-playground/validator after all
// sources are merged. Every violation is reported in a single config error.
//
// # Usage
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Testing
//
// Use config.Default() to get a configuration that needs no files or
// environment variables.
package config
