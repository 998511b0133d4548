// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/triagram/hdf5printer/internal/config"
	"github.com/triagram/hdf5printer/internal/container"
	"github.com/triagram/hdf5printer/internal/explore"
	"github.com/triagram/hdf5printer/internal/issue"
)

var (
	// outputPath is the report file location used with --save
	outputPath string
	// maxItems bounds how many array elements are displayed
	maxItems int
	// maxStringLength bounds displayed string length
	maxStringLength int
	// saveToFile enables writing the report to outputPath
	saveToFile bool
)

// runExplore is the root RunE: it resolves flags against the configuration,
// builds an Explorer, and runs one exploration session over the given file.
func runExplore(cmd *cobra.Command, args []string) error {
	srcPath := args[0]
	cfg := config.Get()

	// Flags win over the config file; untouched flags inherit its values.
	if !cmd.Flags().Changed("max-items") {
		maxItems = cfg.Render.MaxItems
	}
	if !cmd.Flags().Changed("max-string-length") {
		maxStringLength = cfg.Render.MaxStringLength
	}
	if !cmd.Flags().Changed("output") {
		outputPath = cfg.Output.Path
	}
	save := saveToFile || cfg.Output.Save

	if err := validateDisplayLimits(maxItems, maxStringLength); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return &ExitError{Code: 1}
	}

	renderCfg := explore.RenderConfig{
		MaxDisplayItems: maxItems,
		MaxStringLength: maxStringLength,
	}

	explorer := explore.NewExplorer(renderCfg, explore.Options{
		Logger: newLogger(),
	})

	var err error
	if save {
		err = explorer.ExploreToFile(srcPath, outputPath)
	} else {
		err = explorer.Explore(srcPath)
	}
	if err != nil {
		return reportExploreError(err, srcPath)
	}
	return nil
}

// validateDisplayLimits rejects negative display limits coming in through
// flags. The config file path enforces the same constraint in Validate; this
// covers values that bypass it.
func validateDisplayLimits(maxItems, maxStringLength int) error {
	if maxItems < 0 {
		return fmt.Errorf("--max-items must be >= 0, got %d", maxItems)
	}
	if maxStringLength < 0 {
		return fmt.Errorf("--max-string-length must be >= 0, got %d", maxStringLength)
	}
	return nil
}

// reportExploreError prints a one-line user-facing message for any session
// failure and maps it to a non-zero exit code. Raw errors never escape to
// the caller as a crash.
func reportExploreError(err error, srcPath string) error {
	switch {
	case errors.Is(err, container.ErrNotFound):
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("HDF5 file '%s' not found.", srcPath))
		renderIssueHelp(issue.FileNotFoundId)
	case errors.Is(err, container.ErrUnreadable):
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Cannot read HDF5 file '%s': %v", srcPath, err))
		renderIssueHelp(issue.UnreadableFileId)
	case errors.Is(err, explore.ErrOutputFile):
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Cannot write the report file: %v", err))
		renderIssueHelp(issue.OutputWriteFailedId)
	default:
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Unexpected error: ")+formatErrorForDisplay(err, verbose))
	}
	return &ExitError{Code: 1}
}

// renderIssueHelp prints the markdown remediation guide for an issue.
// Only shown in verbose mode to keep the default failure output to one line.
func renderIssueHelp(id issue.Id) {
	if !verbose {
		return
	}
	rendered, err := issue.Get(id).Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}

// newLogger builds the session logger; --verbose lowers it to debug level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "h5printer",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
