// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for h5printer.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/triagram/hdf5printer/internal/config"
	"github.com/triagram/hdf5printer/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and verbose error rendering
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "h5printer [flags] <file.h5>",
		Short: "Explore HDF5 file structure with safe content display",
		Long: TitleStyle.Render("h5printer") + SubtitleStyle.Render(" - HDF5 structure explorer") + `

h5printer walks every group, dataset, and attribute of an HDF5 file and
prints an indented, human-readable report of the hierarchy. Large arrays
and long strings are summarized so the report stays bounded no matter how
big the file is.

` + SubtitleStyle.Render("Examples:") + `
  h5printer data.h5                      Print the structure to the console
  h5printer data.h5 -s -o report.txt     Also save the report to report.txt
  h5printer data.h5 -m 20 -l 200         Raise the display limits
  h5printer config show                  Show the effective configuration`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExplore,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/h5printer/config.toml)")

	// Exploration flags
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfig().Output.Path, "output file full path")
	rootCmd.Flags().IntVarP(&maxItems, "max-items", "m", config.DefaultConfig().Render.MaxItems, "maximum items to display from datasets")
	rootCmd.Flags().IntVarP(&maxStringLength, "max-string-length", "l", config.DefaultConfig().Render.MaxStringLength, "maximum string length before truncation")
	rootCmd.Flags().BoolVarP(&saveToFile, "save", "s", false, "save output to file in addition to the console")

	// Add subcommands
	rootCmd.AddCommand(newConfigCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
