package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML configuration file, applies defaults, and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads a configuration file and then applies
// LF2DATA_* environment variable overrides, e.g. LF2DATA_DATA_DIR or
// LF2DATA_LOGGING_LEVEL. The merged configuration is re-validated.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with every default applied and
// no file loaded. Useful when no config file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LF2DATA_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("LF2DATA_DATA_EXTENSIONS"); v != "" {
		parts := strings.Split(v, ",")
		exts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				exts = append(exts, p)
			}
		}
		c.Data.Extensions = exts
	}
	if v := os.Getenv("LF2DATA_DATA_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LF2DATA_DATA_WORKERS %q: %w", v, err)
		}
		c.Data.Workers = n
	}
	if v := os.Getenv("LF2DATA_DATA_SKIP_UNCHANGED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LF2DATA_DATA_SKIP_UNCHANGED %q: %w", v, err)
		}
		c.Data.SkipUnchanged = &b
	}

	if v := os.Getenv("LF2DATA_WATCH_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LF2DATA_WATCH_ENABLED %q: %w", v, err)
		}
		c.Watch.Enabled = b
	}
	if v := os.Getenv("LF2DATA_WATCH_DEBOUNCE_INTERVAL"); v != "" {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid LF2DATA_WATCH_DEBOUNCE_INTERVAL %q: %w", v, err)
		}
		c.Watch.DebounceInterval = v
	}

	if v := os.Getenv("LF2DATA_CATALOG_BACKEND"); v != "" {
		c.Catalog.Backend = v
	}
	if v := os.Getenv("LF2DATA_CATALOG_SQLITE_PATH"); v != "" {
		c.Catalog.SQLite.Path = v
	}

	if v := os.Getenv("LF2DATA_SCHEDULE_RESCAN"); v != "" {
		c.Schedule.Rescan = v
	}

	if v := os.Getenv("LF2DATA_LOGGING_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LF2DATA_LOGGING_FORMAT"); v != "" {
		c.Logging.Format = v
	}

	return nil
}
