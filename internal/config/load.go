package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by Load.
const (
	EnvConfigFile   = "TIPSTR_CONFIG"
	EnvPercentages  = "TIPSTR_PERCENTAGES"
	EnvFullTurns    = "TIPSTR_FULL_TURNS"
	EnvSpinDuration = "TIPSTR_SPIN_DURATION"
	EnvCurrency     = "TIPSTR_CURRENCY"
	EnvSnapshotDir  = "TIPSTR_SNAPSHOT_DIR"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvLogFile      = "LOG_FILE"
	EnvEnvironment  = "ENVIRONMENT"
)

// Load builds the configuration: defaults, then the YAML file named by
// TIPSTR_CONFIG (if any), then environment variables. A .env file in the
// working directory is loaded first if present.
func Load() (Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv(EnvConfigFile)); path != "" {
		var err error
		cfg, err = LoadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
	}

	cfg, err := applyEnv(cfg)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto base. Keys missing from the
// file keep their value from base.
func LoadFile(base Config, path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg Config) (Config, error) {
	if v, ok := lookup(EnvPercentages); ok {
		p, err := ParsePercentages(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value: %w", EnvPercentages, err)
		}
		cfg.TipPercentages = p
	}
	if v, ok := lookup(EnvFullTurns); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value: %w", EnvFullTurns, err)
		}
		cfg.FullTurns = n
	}
	if v, ok := lookup(EnvSpinDuration); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value: %w", EnvSpinDuration, err)
		}
		cfg.SpinDuration = d
	}
	if v, ok := lookup(EnvCurrency); ok {
		cfg.Currency = v
	}
	if v, ok := lookup(EnvSnapshotDir); ok {
		cfg.SnapshotDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvEnvironment); ok {
		cfg.Environment = v
	}
	return cfg, nil
}

// ParsePercentages parses a comma-separated list such as "15, 18,20".
func ParsePercentages(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(part, "%"))
		if err != nil {
			return nil, fmt.Errorf("percentage %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// lookup returns a trimmed, non-empty environment value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
