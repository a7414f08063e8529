package config

import (
	"fmt"
	"sync"
)

var (
	mu         sync.RWMutex
	current    *Config
	loadedPath string
)

// Initialize loads the configuration from path with environment
// overrides and makes it the process-wide configuration. Calling
// Initialize again replaces the previous configuration.
func Initialize(path string) error {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	current = cfg
	loadedPath = path
	return nil
}

// GetConfig returns the process-wide configuration, or an error if
// Initialize has not been called.
func GetConfig() (*Config, error) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return current, nil
}

// MustGetConfig returns the process-wide configuration and panics if
// Initialize has not been called. Intended for command wiring where a
// missing configuration is a programming error.
func MustGetConfig() *Config {
	cfg, err := GetConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

// SetConfig replaces the process-wide configuration. The configuration
// is validated first.
func SetConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	current = cfg
	return nil
}

// ReloadConfig re-reads the configuration file Initialize was called
// with. The previous configuration stays in place if reloading fails.
func ReloadConfig() error {
	mu.RLock()
	path := loadedPath
	mu.RUnlock()

	if path == "" {
		return fmt.Errorf("configuration not initialized")
	}
	return Initialize(path)
}
