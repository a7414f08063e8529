package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Data.Dir = "/data"
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Data.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", cfg.Data.Workers, DefaultWorkers)
	}
	if len(cfg.Data.Extensions) != 2 || cfg.Data.Extensions[0] != ".dat" {
		t.Errorf("Extensions = %v, want %v", cfg.Data.Extensions, DefaultExtensions)
	}
	if cfg.Data.SkipUnchanged == nil || !*cfg.Data.SkipUnchanged {
		t.Error("SkipUnchanged should default to true")
	}
	if cfg.Watch.DebounceInterval != DefaultDebounceInterval {
		t.Errorf("DebounceInterval = %q, want %q", cfg.Watch.DebounceInterval, DefaultDebounceInterval)
	}
	if cfg.Catalog.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", cfg.Catalog.Backend)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %q/%q, want info/text", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	skip := false
	cfg := &Config{}
	cfg.Data.Workers = 16
	cfg.Data.SkipUnchanged = &skip
	cfg.Logging.Level = "debug"
	cfg.ApplyDefaults()

	if cfg.Data.Workers != 16 {
		t.Errorf("Workers = %d, want 16", cfg.Data.Workers)
	}
	if *cfg.Data.SkipUnchanged {
		t.Error("explicit SkipUnchanged=false was overwritten")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "zero workers",
			mutate: func(c *Config) { c.Data.Workers = -1 },
			field:  "data.workers",
		},
		{
			name:   "negative max file size",
			mutate: func(c *Config) { c.Data.MaxFileSize = -5 },
			field:  "data.max_file_size",
		},
		{
			name:   "extension without dot",
			mutate: func(c *Config) { c.Data.Extensions = []string{"dat"} },
			field:  "data.extensions[0]",
		},
		{
			name:   "bad debounce duration",
			mutate: func(c *Config) { c.Watch.DebounceInterval = "soon" },
			field:  "watch.debounce_interval",
		},
		{
			name:   "negative debounce duration",
			mutate: func(c *Config) { c.Watch.DebounceInterval = "-1s" },
			field:  "watch.debounce_interval",
		},
		{
			name:   "unknown backend",
			mutate: func(c *Config) { c.Catalog.Backend = "postgres" },
			field:  "catalog.backend",
		},
		{
			name:   "sqlite without path",
			mutate: func(c *Config) { c.Catalog.Backend = "sqlite" },
			field:  "catalog.sqlite.path",
		},
		{
			name:   "bad busy timeout",
			mutate: func(c *Config) { c.Catalog.SQLite.BusyTimeout = "fast" },
			field:  "catalog.sqlite.busy_timeout",
		},
		{
			name:   "bad cron expression",
			mutate: func(c *Config) { c.Schedule.Rescan = "every tuesday" },
			field:  "schedule.rescan",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			field:  "logging.level",
		},
		{
			name:   "bad log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			field:  "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no FieldError for %q in %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Data.Workers = 0
	cfg.Logging.Level = "loud"
	cfg.Catalog.Backend = "redis"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	verr := err.(*ValidationError)
	if len(verr.Fields) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(verr.Fields), verr.Fields)
	}
	if !strings.Contains(verr.Error(), "data.workers") {
		t.Errorf("Error() = %q, want mention of data.workers", verr.Error())
	}
}

func TestValidScheduleAccepted(t *testing.T) {
	cfg := validConfig()
	cfg.Schedule.Rescan = "*/5 * * * *"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
