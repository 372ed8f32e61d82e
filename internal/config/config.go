// Package config holds the rmsexport tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"rmsexport/internal/metadata"
	"rmsexport/internal/volumes"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "rmsexport.toml"

// Config holds the complete tool configuration.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Export  ExportConfig  `toml:"export"`
	Logging LoggingConfig `toml:"logging"`
}

// ProjectConfig selects the project snapshot jobs are read from.
type ProjectConfig struct {
	Snapshot string `toml:"snapshot"`
}

// ExportConfig controls where and how objects are written.
type ExportConfig struct {
	OutputDir    string `toml:"output_dir"`
	TableFormat  string `toml:"table_format"`
	GlobalConfig string `toml:"global_config"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Snapshot: ".",
		},
		Export: ExportConfig{
			OutputDir:    "share/results",
			TableFormat:  string(volumes.FormatCSV),
			GlobalConfig: metadata.DefaultGlobalConfigPath,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Load reads configuration from a TOML file on top of the defaults.
// A missing file gives the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err == nil {
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Parse decodes TOML data into cfg. Unknown keys are an error.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RMSEXPORT_SNAPSHOT"); v != "" {
		c.Project.Snapshot = v
	}

	if v := os.Getenv("RMSEXPORT_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}

	if v := os.Getenv("RMSEXPORT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Project.Snapshot == "" {
		return errors.New("project snapshot is not configured (set project.snapshot or RMSEXPORT_SNAPSHOT)")
	}

	if c.Export.OutputDir == "" {
		return errors.New("export output_dir is not configured")
	}

	if _, err := volumes.ParseFormat(c.Export.TableFormat); err != nil {
		return err
	}

	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	if c.Logging.Format != FormatJSON && c.Logging.Format != FormatConsole {
		return fmt.Errorf("invalid log format: %s (valid: %s, %s)", c.Logging.Format, FormatJSON, FormatConsole)
	}

	return nil
}

// Format returns the configured table format. Call Validate first.
func (c *Config) Format() volumes.Format {
	return volumes.Format(c.Export.TableFormat)
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return f.Close()
}
