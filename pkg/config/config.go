package config

// Config is the root configuration for lf2data.
type Config struct {
	// Data controls where object data files are read from and how they
	// are loaded.
	Data DataConfig `yaml:"data"`

	// Watch controls filesystem watching for continuous reloading.
	Watch WatchConfig `yaml:"watch"`

	// Catalog controls where parsed object metadata is stored.
	Catalog CatalogConfig `yaml:"catalog"`

	// Schedule controls periodic rescans of the data directory.
	Schedule ScheduleConfig `yaml:"schedule"`

	// Logging controls log output.
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds data directory settings.
type DataConfig struct {
	// Dir is the directory scanned for object data files.
	Dir string `yaml:"dir"`

	// Extensions lists file extensions treated as object data.
	// Default: [".dat", ".txt"]
	Extensions []string `yaml:"extensions"`

	// Workers is the number of concurrent parse workers used by
	// directory scans.
	// Default: 4
	Workers int `yaml:"workers"`

	// SkipUnchanged skips files whose checksum matches the catalog
	// record from a previous scan.
	// Default: true
	SkipUnchanged *bool `yaml:"skip_unchanged"`

	// MaxFileSize is the largest input accepted by the parser, in
	// bytes. Zero uses the parser default.
	MaxFileSize int `yaml:"max_file_size"`
}

// WatchConfig holds filesystem watcher settings.
type WatchConfig struct {
	// Enabled turns on filesystem watching.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// DebounceInterval is how long to wait after the last change event
	// before reloading a file, e.g. "500ms".
	// Default: "500ms"
	DebounceInterval string `yaml:"debounce_interval"`
}

// CatalogConfig holds catalog storage settings.
type CatalogConfig struct {
	// Backend selects the storage backend.
	// Options: "memory", "sqlite"
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLite holds settings for the sqlite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// SQLiteConfig holds sqlite backend settings.
type SQLiteConfig struct {
	// Path is the database file path. Required when the sqlite backend
	// is selected.
	Path string `yaml:"path"`

	// BusyTimeout is the sqlite busy timeout, e.g. "5s".
	// Default: "5s"
	BusyTimeout string `yaml:"busy_timeout"`

	// CheckpointInterval is how often the WAL is checkpointed.
	// Default: "5m"
	CheckpointInterval string `yaml:"checkpoint_interval"`
}

// ScheduleConfig holds periodic rescan settings.
type ScheduleConfig struct {
	// Rescan is a standard cron expression for periodic directory
	// rescans. Empty disables scheduling.
	Rescan string `yaml:"rescan"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level sets the minimum log level.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format selects the log output format.
	// Options: "text", "json"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes source file and line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}
