package optrack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/etnz/optrack/date"
)

// Config is the application configuration surface. It can be loaded from a
// YAML file; command-line flags override individual values.
type Config struct {
	// Action selects what to do: "list" or "import".
	Action string       `yaml:"action"`
	DB     DBConfig     `yaml:"db"`
	Input  InputConfig  `yaml:"input"`
	Filter FilterConfig `yaml:"filter"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// DBConfig locates the document store.
type DBConfig struct {
	URL string `yaml:"url"`
}

// InputConfig locates the broker export to import.
type InputConfig struct {
	File string `yaml:"file"`
}

// RangeConfig bounds transaction dates; either side may be omitted.
type RangeConfig struct {
	Start date.Date `yaml:"start"`
	End   date.Date `yaml:"end"`
}

// FilterConfig restricts which transactions the list report covers.
type FilterConfig struct {
	// Symbol of options or stock, case-insensitive regular expression.
	Symbol string `yaml:"symbol"`
	// Underlying stock symbol (options only), case-insensitive exact match.
	Underlying string      `yaml:"underlying"`
	Range      RangeConfig `yaml:"range"`
}

// OutputConfig tunes the report rendering.
type OutputConfig struct {
	DateFormat    string `yaml:"date_format"`
	MaxTableWidth int    `yaml:"max_table_width"`
}

// LogConfig tunes logging. An empty File logs to the console only.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	// MaxSizeMB caps a log file before rotation.
	MaxSizeMB  int `yaml:"max_size_mb"`
	MaxBackups int `yaml:"max_backups"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Action: "list",
		DB:     DBConfig{URL: "mongodb://localhost:27017"},
		Output: OutputConfig{
			DateFormat:    date.USFormat,
			MaxTableWidth: 120,
		},
		Log: LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3},
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. An
// empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// PositionFilter converts the configured filter into the store query filter.
func (c *Config) PositionFilter() Filter {
	return Filter{
		Symbol:     c.Filter.Symbol,
		Underlying: c.Filter.Underlying,
		Range:      date.NewRange(c.Filter.Range.Start, c.Filter.Range.End),
	}
}
