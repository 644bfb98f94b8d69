// Package config loads settings for the vecpath command from YAML or TOML
// files, with environment variables as overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	applog "honnef.co/go/vecpath/internal/log"
)

type SamplingConfig struct {
	// Distance between polygon points.
	Spacing float64 `yaml:"spacing" toml:"spacing"`
}

type OutputConfig struct {
	Format       string  `yaml:"format" toml:"format"` // svg | pdf | png | json
	MaxPrecision int     `yaml:"max_precision" toml:"max_precision"`
	Margin       float64 `yaml:"margin" toml:"margin"`
	Scale        float64 `yaml:"scale" toml:"scale"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	Source bool   `yaml:"source" toml:"source"`
	File   string `yaml:"file" toml:"file"`
}

type Config struct {
	Sampling SamplingConfig `yaml:"sampling" toml:"sampling"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// Formats lists the supported output formats.
var Formats = []string{"svg", "pdf", "png", "json"}

// Env var names used as overrides. The logging section is overridden by the
// variables of package log.
const (
	EnvSpacing   = "VECPATH_SPACING"
	EnvFormat    = "VECPATH_FORMAT"
	EnvPrecision = "VECPATH_PRECISION"
)

// ErrInvalid is wrapped by all errors returned from [Config.Validate].
var ErrInvalid = errors.New("invalid configuration")

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Sampling: SamplingConfig{Spacing: 1},
		Output:   OutputConfig{Format: "svg", MaxPrecision: 3, Margin: 10, Scale: 1},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration file at path on top of the defaults and
// applies environment overrides. The file format is chosen by extension. An
// empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &cfg)
		case ".toml":
			err = toml.Unmarshal(data, &cfg)
		default:
			err = fmt.Errorf("unsupported config file extension %q", ext)
		}
		if err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvSpacing)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpacing, err)
		}
		cfg.Sampling.Spacing = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Output.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrecision)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		cfg.Output.MaxPrecision = n
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvFile)); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

// LogOptions converts the logging section for [applog.Init].
func (c Config) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

// Validate reports settings the command can't work with.
func (c Config) Validate() error {
	var errs []error
	if !(c.Sampling.Spacing > 0) {
		errs = append(errs, fmt.Errorf("%w: sampling.spacing must be positive, got %v", ErrInvalid, c.Sampling.Spacing))
	}
	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("%w: unknown output.format %q", ErrInvalid, c.Output.Format))
	}
	if c.Output.MaxPrecision < 0 {
		errs = append(errs, fmt.Errorf("%w: output.max_precision must not be negative", ErrInvalid))
	}
	if !(c.Output.Scale > 0) {
		errs = append(errs, fmt.Errorf("%w: output.scale must be positive, got %v", ErrInvalid, c.Output.Scale))
	}
	return errors.Join(errs...)
}
