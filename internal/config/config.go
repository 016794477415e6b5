package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/rshade/dexterm/internal/catalog"
)

// Defaults applied by New.
const (
	DefaultBaseURL   = catalog.DefaultBaseURL
	DefaultPageSize  = catalog.DefaultPageLimit
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = catalog.DefaultUserAgent
	DefaultFormat    = "table"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	dirName        = ".dexterm"
	configFileName = "config.yaml"
	logFileName    = "dexterm.log"
)

// Environment variables read by Load.
const (
	EnvConfig      = "DEXTERM_CONFIG"
	EnvBaseURL     = "DEXTERM_BASE_URL"
	EnvPageSize    = "DEXTERM_PAGE_SIZE"
	EnvConcurrency = "DEXTERM_CONCURRENCY"
	EnvLogLevel    = "DEXTERM_LOG_LEVEL"
	EnvLogFormat   = "DEXTERM_LOG_FORMAT"
)

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full dexterm configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig controls how the remote catalog is reached.
type CatalogConfig struct {
	BaseURL  string        `yaml:"base_url"  validate:"required,url"`
	PageSize int           `yaml:"page_size" validate:"min=1,max=1000"`
	Timeout  time.Duration `yaml:"timeout"   validate:"gte=0"`

	// Concurrency caps parallel detail fetches per page; 0 means unbounded.
	Concurrency int    `yaml:"concurrency" validate:"min=0,max=256"`
	UserAgent   string `yaml:"user_agent"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"omitempty,oneof=table json ndjson"`
}

// LoggingConfig controls the logger built at startup.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
	File   string `yaml:"file"`
	// Caller adds the source file and line to every entry.
	Caller bool   `yaml:"caller"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:   DefaultBaseURL,
			PageSize:  DefaultPageSize,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Output: OutputConfig{DefaultFormat: DefaultFormat},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Dir returns ~/.dexterm, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dirName)
}

// DefaultLogFile is where the interactive browser logs when no file is configured.
func DefaultLogFile() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, logFileName)
	}
	return filepath.Join(os.TempDir(), logFileName)
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (or $DEXTERM_CONFIG, or ~/.dexterm/config.yaml when present), then
// environment overrides. A .env file in the working directory is loaded
// first so its values count as environment.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := New()

	if path == "" {
		if env, ok := lookupEnv(EnvConfig); ok && env != "" {
			path = env
		} else if dir := Dir(); dir != "" {
			candidate := filepath.Join(dir, configFileName)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvBaseURL); ok && v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvPageSize, v)
		}
		cfg.Catalog.PageSize = n
	}
	if v, ok := lookupEnv(EnvConcurrency); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvConcurrency, v)
		}
		cfg.Catalog.Concurrency = n
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
