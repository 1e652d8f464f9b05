// Package config holds the process-wide settings of an error handler.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvDevelopment is the only environment that exposes error internals to clients.
	EnvDevelopment = "development"

	LogFormatLogfmt = "logfmt"
	LogFormatJSON   = "json"
)

// Environment variables read by FromEnv.
const (
	EnvVarEnvironment = "GO_ENV"
	EnvVarErrorName   = "ERROR_NAME"
	EnvVarLogFormat   = "LOG_FORMAT"
	EnvVarLogLevel    = "LOG_LEVEL"
)

var (
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)

// Config is immutable once handed to a handler.
type Config struct {
	// Environment selects what clients see; "development" exposes internals.
	Environment string `yaml:"environment"`
	// ErrorName, when set, replaces the name of every handled error.
	ErrorName string `yaml:"error_name"`
	// LogFormat and LogLevel configure the bundled logging sinks.
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when nothing is supplied.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()

	return cfg
}

// Development reports whether error internals may be exposed.
func (c Config) Development() bool {
	return c.Environment == EnvDevelopment
}

// Validate checks the logging settings.
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatLogfmt, LogFormatJSON:
	default:
		return pkgerrors.Wrapf(ErrInvalidLogFormat, "%q", c.LogFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return pkgerrors.Wrapf(ErrInvalidLogLevel, "%q", c.LogLevel)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}

	if c.LogFormat == "" {
		c.LogFormat = LogFormatLogfmt
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load reads configuration from a YAML file. Environment variables in the file
// are expanded before parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, pkgerrors.Wrap(err, "failed to read config file")
	}

	return Parse(data)
}

// Parse decodes YAML configuration, expanding environment variables first.
func Parse(data []byte) (Config, error) {
	var cfg Config

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, pkgerrors.Wrap(err, "failed to parse config file")
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FromEnv builds the configuration from environment variables after loading the
// given .env files. Without arguments ./.env is loaded if it exists.
func FromEnv(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, pkgerrors.Wrap(err, "failed to load env file")
		}
	}

	cfg := Config{
		Environment: os.Getenv(EnvVarEnvironment),
		ErrorName:   os.Getenv(EnvVarErrorName),
		LogFormat:   os.Getenv(EnvVarLogFormat),
		LogLevel:    os.Getenv(EnvVarLogLevel),
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
