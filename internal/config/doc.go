// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from ~/.config/h5printer/config.toml (or the XDG
// equivalent on Linux, ~/Library/Application Support/h5printer/config.toml
// on macOS, %APPDATA%\h5printer\config.toml on Windows), with a config file
// in the current directory as a fallback. The file supplies defaults for the
// display limits, the output path, and verbosity; command-line flags always
// take precedence.
package config
