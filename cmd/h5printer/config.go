// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/triagram/hdf5printer/internal/config"
	"github.com/triagram/hdf5printer/internal/issue"
)

// newConfigCommand creates the `h5printer config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage h5printer configuration",
		Long: `Manage h5printer configuration.

Configuration is stored in:
  - Linux: ~/.config/h5printer/config.toml
  - macOS: ~/Library/Application Support/h5printer/config.toml
  - Windows: %APPDATA%\h5printer\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	return cfgCmd
}

// showConfig prints the effective configuration as TOML.
func showConfig(ctx context.Context) error {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		if verbose {
			rendered, rerr := issue.Get(issue.ConfigLoadFailedId).Render("dark")
			if rerr == nil {
				fmt.Fprint(os.Stderr, rendered)
			}
		}
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path := config.Path(); path != "" {
		fmt.Printf("%s: %s\n", KeyStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	encoded, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	fmt.Print(string(encoded))
	return nil
}

// initConfigFile writes the default configuration to the standard location.
// An existing file is left untouched.
func initConfigFile() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s %s\n", WarningStyle.Render("Config file already exists:"), path)
		return nil
	}

	encoded, err := toml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default configuration: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("%s %s\n", SuccessStyle.Render("Created config file:"), path)
	return nil
}

// showConfigPath prints where the configuration file lives (or would live).
func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
