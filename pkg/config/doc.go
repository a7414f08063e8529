/*
Package config holds the lf2data configuration model.

Configuration is loaded from a YAML file, optionally overridden via
LF2DATA_* environment variables, filled with defaults, and validated
before use:

	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

Validation collects every problem at once, so a broken file reports all
of its invalid fields in a single error:

	if err := cfg.Validate(); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Println(f.Field, f.Message)
			}
		}
	}

A minimal configuration file:

	data:
	  dir: /opt/lf2/data
	catalog:
	  backend: sqlite
	  sqlite:
	    path: /var/lib/lf2data/catalog.db
	schedule:
	  rescan: "0 3 * * *"

Environment overrides use the LF2DATA_SECTION_FIELD convention, e.g.
LF2DATA_DATA_DIR, LF2DATA_DATA_WORKERS, LF2DATA_LOGGING_LEVEL.

For long-running processes, Initialize/GetConfig provide a process-wide
configuration guarded for concurrent access, with ReloadConfig re-reading
the original file on demand.
*/
package config
