// SPDX-License-Identifier: MPL-2.0

package config

import "fmt"

// Config is the application configuration.
type Config struct {
	// Render bounds how much value content makes it into the report.
	Render RenderConfig `mapstructure:"render" toml:"render"`
	// Output controls the optional report file.
	Output OutputConfig `mapstructure:"output" toml:"output"`
	// UI holds console behavior settings.
	UI UIConfig `mapstructure:"ui" toml:"ui"`
}

// RenderConfig holds the display limits.
type RenderConfig struct {
	// MaxItems is the element budget for arrays and dataset payloads.
	MaxItems int `mapstructure:"max_items" toml:"max_items"`
	// MaxStringLength is the character budget for text values.
	MaxStringLength int `mapstructure:"max_string_length" toml:"max_string_length"`
}

// OutputConfig holds report file settings.
type OutputConfig struct {
	// Path is the report file location used with --save.
	Path string `mapstructure:"path" toml:"path"`
	// Save writes the report file without requiring the --save flag.
	Save bool `mapstructure:"save" toml:"save"`
}

// UIConfig holds console behavior settings.
type UIConfig struct {
	// Verbose enables debug logging and verbose error rendering.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			MaxItems:        10,
			MaxStringLength: 100,
		},
		Output: OutputConfig{
			Path: "h5_structure.txt",
			Save: false,
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}

// Validate checks constraints the file format cannot express.
func (c *Config) Validate() error {
	if c.Render.MaxItems < 0 {
		return fmt.Errorf("render.max_items must be >= 0, got %d", c.Render.MaxItems)
	}
	if c.Render.MaxStringLength < 0 {
		return fmt.Errorf("render.max_string_length must be >= 0, got %d", c.Render.MaxStringLength)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	return nil
}
