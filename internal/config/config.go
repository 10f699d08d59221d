// Package config loads fuelco2 settings from a YAML file with environment
// overrides and exposes the process-wide configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. Sections are separated
// by a double underscore: FUELCO2_OUTPUT__DEFAULT_FORMAT=json.
const EnvPrefix = "FUELCO2_"

// Output formats understood by the calc command.
const (
	FormatTable        = "table"
	FormatJSON         = "json"
	FormatNDJSON       = "ndjson"
	FormatChart        = "chart"
	FormatLineProtocol = "lineprotocol"
)

// Default values.
const (
	defaultFormat    = FormatTable
	defaultPrecision = 3
	defaultLocale    = "en"
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	maxPrecision     = 10
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete fuelco2 configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`

	configPath string
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
	Locale        string `yaml:"locale"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written after each calc run when set.
	Textfile string `yaml:"textfile"`
}

// New returns a Config holding the defaults.
func New() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills every empty field with its default.
func (c *Config) SetDefaults() {
	if c.Output.DefaultFormat == "" {
		c.Output.DefaultFormat = defaultFormat
	}
	if c.Output.Precision == 0 {
		c.Output.Precision = defaultPrecision
	}
	if c.Output.Locale == "" {
		c.Output.Locale = defaultLocale
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !IsValidFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q", ErrInvalidConfig, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision %d outside [0, %d]",
			ErrInvalidConfig, c.Output.Precision, maxPrecision)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// IsValidFormat reports whether format is a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatNDJSON, FormatChart, FormatLineProtocol:
		return true
	default:
		return false
	}
}

// Load reads the YAML or JSON file at path over the defaults and applies
// FUELCO2_ environment overrides. Explicit zero values such as precision 0
// are kept. A missing file is not an error: the result is the defaults plus
// overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, parserErr := parserFor(path)
			if parserErr != nil {
				return nil, parserErr
			}
			if loadErr := k.Load(file.Provider(path), parser); loadErr != nil {
				return nil, fmt.Errorf("loading config %s: %w", path, loadErr)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot access config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parserFor picks the koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
}

// envKey maps FUELCO2_OUTPUT__DEFAULT_FORMAT to output.default_format.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetConfigPath sets the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// ConfigPath returns the file the config was loaded from or saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Marshal returns the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
