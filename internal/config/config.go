package config

import "time"

// Config contains configurable parameters for the tip wheel.
// Use Default() to get sensible defaults, then override as needed.
type Config struct {
	// Wheel settings
	TipPercentages []int         `yaml:"tip_percentages"` // Ordered wheel segments (default: 15,18,20,22,25,30)
	FullTurns      int           `yaml:"full_turns"`      // Whole turns added to every spin (default: 5)
	SpinDuration   time.Duration `yaml:"spin_duration"`   // Delay before the result is revealed (default: 3s)

	// Display
	Currency    string `yaml:"currency"`     // Currency symbol (default: "$")
	SnapshotDir string `yaml:"snapshot_dir"` // Where PNG snapshots are written (default: ".")

	// Logging
	LogLevel    string `yaml:"log_level"`   // debug, info, warn, error (default: info)
	LogFormat   string `yaml:"log_format"`  // text or json (default: text)
	LogFile     string `yaml:"log_file"`    // Empty discards logs; the terminal belongs to the TUI
	Environment string `yaml:"environment"` // dev, staging, prod (default: dev)
	Version     string `yaml:"-"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		TipPercentages: []int{15, 18, 20, 22, 25, 30},
		FullTurns:      5,
		SpinDuration:   3 * time.Second,

		Currency:    "$",
		SnapshotDir: ".",

		LogLevel:    "info",
		LogFormat:   "text",
		Environment: "dev",
		Version:     "dev",
	}
}

// WithTipPercentages returns a copy of the config with the given wheel segments.
func (c Config) WithTipPercentages(p ...int) Config {
	c.TipPercentages = append([]int(nil), p...)
	return c
}

// WithFullTurns returns a copy of the config with modified full turns.
func (c Config) WithFullTurns(n int) Config {
	c.FullTurns = n
	return c
}

// WithSpinDuration returns a copy of the config with modified spin duration.
func (c Config) WithSpinDuration(d time.Duration) Config {
	c.SpinDuration = d
	return c
}

// WithCurrency returns a copy of the config with a different currency symbol.
func (c Config) WithCurrency(symbol string) Config {
	c.Currency = symbol
	return c
}

// WithLogFile returns a copy of the config that logs to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if len(c.TipPercentages) == 0 {
		return &ConfigError{Field: "TipPercentages", Message: "must not be empty"}
	}
	seen := make(map[int]bool, len(c.TipPercentages))
	for _, p := range c.TipPercentages {
		if p < 1 || p > 100 {
			return &ConfigError{Field: "TipPercentages", Message: "values must be between 1 and 100"}
		}
		if seen[p] {
			return &ConfigError{Field: "TipPercentages", Message: "values must be unique"}
		}
		seen[p] = true
	}
	if c.FullTurns < 0 {
		return &ConfigError{Field: "FullTurns", Message: "must not be negative"}
	}
	if c.SpinDuration <= 0 {
		return &ConfigError{Field: "SpinDuration", Message: "must be positive"}
	}
	if c.Currency == "" {
		return &ConfigError{Field: "Currency", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
