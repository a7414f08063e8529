package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// FieldError describes a single invalid configuration field.
type FieldError struct {
	// Field is the dotted path of the offending field, e.g.
	// "catalog.sqlite.path".
	Field string

	// Message explains why the value is invalid.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every invalid field found in a Config so
// callers can report them all at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "configuration is invalid"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns a *ValidationError
// listing every problem, or nil if the configuration is usable.
// ApplyDefaults should run first.
func (c *Config) Validate() error {
	var fields []FieldError

	fields = append(fields, c.validateData()...)
	fields = append(fields, c.validateWatch()...)
	fields = append(fields, c.validateCatalog()...)
	fields = append(fields, c.validateSchedule()...)
	fields = append(fields, c.validateLogging()...)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (c *Config) validateData() []FieldError {
	var fields []FieldError

	if c.Data.Workers < 1 {
		fields = append(fields, FieldError{
			Field:   "data.workers",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Data.Workers),
		})
	}
	if c.Data.MaxFileSize < 0 {
		fields = append(fields, FieldError{
			Field:   "data.max_file_size",
			Message: fmt.Sprintf("must not be negative, got %d", c.Data.MaxFileSize),
		})
	}
	for i, ext := range c.Data.Extensions {
		if !strings.HasPrefix(ext, ".") {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("data.extensions[%d]", i),
				Message: fmt.Sprintf("must start with '.', got %q", ext),
			})
		}
	}

	return fields
}

func (c *Config) validateWatch() []FieldError {
	var fields []FieldError

	if d, err := time.ParseDuration(c.Watch.DebounceInterval); err != nil {
		fields = append(fields, FieldError{
			Field:   "watch.debounce_interval",
			Message: fmt.Sprintf("invalid duration %q", c.Watch.DebounceInterval),
		})
	} else if d <= 0 {
		fields = append(fields, FieldError{
			Field:   "watch.debounce_interval",
			Message: fmt.Sprintf("must be positive, got %q", c.Watch.DebounceInterval),
		})
	}

	return fields
}

func (c *Config) validateCatalog() []FieldError {
	var fields []FieldError

	switch c.Catalog.Backend {
	case "memory":
	case "sqlite":
		if c.Catalog.SQLite.Path == "" {
			fields = append(fields, FieldError{
				Field:   "catalog.sqlite.path",
				Message: "required when catalog.backend is \"sqlite\"",
			})
		}
	default:
		fields = append(fields, FieldError{
			Field:   "catalog.backend",
			Message: fmt.Sprintf("must be \"memory\" or \"sqlite\", got %q", c.Catalog.Backend),
		})
	}

	for _, f := range []struct {
		field string
		value string
	}{
		{"catalog.sqlite.busy_timeout", c.Catalog.SQLite.BusyTimeout},
		{"catalog.sqlite.checkpoint_interval", c.Catalog.SQLite.CheckpointInterval},
	} {
		if d, err := time.ParseDuration(f.value); err != nil {
			fields = append(fields, FieldError{
				Field:   f.field,
				Message: fmt.Sprintf("invalid duration %q", f.value),
			})
		} else if d <= 0 {
			fields = append(fields, FieldError{
				Field:   f.field,
				Message: fmt.Sprintf("must be positive, got %q", f.value),
			})
		}
	}

	return fields
}

func (c *Config) validateSchedule() []FieldError {
	if c.Schedule.Rescan == "" {
		return nil
	}
	if _, err := cron.ParseStandard(c.Schedule.Rescan); err != nil {
		return []FieldError{{
			Field:   "schedule.rescan",
			Message: fmt.Sprintf("invalid cron expression %q: %v", c.Schedule.Rescan, err),
		}}
	}
	return nil
}

func (c *Config) validateLogging() []FieldError {
	var fields []FieldError

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		fields = append(fields, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		fields = append(fields, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be \"text\" or \"json\", got %q", c.Logging.Format),
		})
	}

	return fields
}
