// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	cacheMu sync.Mutex

	// globalConfig caches the most recently loaded configuration.
	globalConfig *Config
	// configPath remembers where the cached configuration came from.
	configPath string

	// configFilePathOverride forces loading from a specific file (--config).
	configFilePathOverride string
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
)

// Load loads the configuration, caching the result for subsequent Get calls.
func Load() (*Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	configPath = path
	return cfg, nil
}

// Get returns the cached configuration, loading it on first use. On load
// failure it falls back to the defaults so callers always get a usable value.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Path returns the file the cached configuration was loaded from, or the
// empty string when defaults are in effect.
func Path() string {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return configPath
}

// SetConfigFilePathOverride sets a custom config file path and clears the
// cache so the next Load picks it up.
func SetConfigFilePathOverride(path string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configFilePathOverride = path
	globalConfig = nil
	configPath = ""
}

// SetConfigDirOverride sets a custom config directory path. This is
// primarily intended for testing to bypass os.UserHomeDir() which doesn't
// reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configDirOverride = dir
	globalConfig = nil
	configPath = ""
}

// Reset clears all overrides and cached state. Call from test cleanup to
// restore defaults.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configFilePathOverride = ""
	configDirOverride = ""
	globalConfig = nil
	configPath = ""
}
