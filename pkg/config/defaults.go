package config

// Default values applied by ApplyDefaults when a field is unset.
const (
	DefaultWorkers            = 4
	DefaultSkipUnchanged      = true
	DefaultDebounceInterval   = "500ms"
	DefaultCatalogBackend     = "memory"
	DefaultBusyTimeout        = "5s"
	DefaultCheckpointInterval = "5m"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
)

// DefaultExtensions are the file extensions treated as object data when
// none are configured.
var DefaultExtensions = []string{".dat", ".txt"}

// ApplyDefaults fills unset fields with default values.
func (c *Config) ApplyDefaults() {
	if len(c.Data.Extensions) == 0 {
		c.Data.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if c.Data.Workers == 0 {
		c.Data.Workers = DefaultWorkers
	}
	if c.Data.SkipUnchanged == nil {
		v := DefaultSkipUnchanged
		c.Data.SkipUnchanged = &v
	}

	if c.Watch.DebounceInterval == "" {
		c.Watch.DebounceInterval = DefaultDebounceInterval
	}

	if c.Catalog.Backend == "" {
		c.Catalog.Backend = DefaultCatalogBackend
	}
	if c.Catalog.SQLite.BusyTimeout == "" {
		c.Catalog.SQLite.BusyTimeout = DefaultBusyTimeout
	}
	if c.Catalog.SQLite.CheckpointInterval == "" {
		c.Catalog.SQLite.CheckpointInterval = DefaultCheckpointInterval
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}
