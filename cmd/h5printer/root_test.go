// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triagram/hdf5printer/internal/container"
	"github.com/triagram/hdf5printer/internal/explore"
)

func TestRootCommand_FlagSurface(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"output", "o", "h5_structure.txt"},
		{"max-items", "m", "10"},
		{"max-string-length", "l", "100"},
		{"save", "s", "false"},
	}

	for _, tc := range tests {
		f := rootCmd.Flags().Lookup(tc.name)
		require.NotNil(t, f, "flag --%s must exist", tc.name)
		require.Equal(t, tc.shorthand, f.Shorthand)
		require.Equal(t, tc.defValue, f.DefValue)
	}

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestRootCommand_RequiresExactlyOneArg(t *testing.T) {
	require.Error(t, rootCmd.Args(rootCmd, nil))
	require.Error(t, rootCmd.Args(rootCmd, []string{"a.h5", "b.h5"}))
	require.NoError(t, rootCmd.Args(rootCmd, []string{"a.h5"}))
}

func TestRootCommand_HasConfigSubcommand(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "config")
}

func TestValidateDisplayLimits(t *testing.T) {
	require.NoError(t, validateDisplayLimits(0, 0))
	require.NoError(t, validateDisplayLimits(10, 100))
	require.Error(t, validateDisplayLimits(-4, 100))
	require.Error(t, validateDisplayLimits(10, -1))
}

func TestReportExploreError_MapsToExitCodeOne(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("open: %w", container.ErrNotFound),
		fmt.Errorf("open: %w", container.ErrUnreadable),
		fmt.Errorf("save: %w", explore.ErrOutputFile),
		errors.New("something else entirely"),
	} {
		var exitErr *ExitError
		require.True(t, errors.As(reportExploreError(err, "data.h5"), &exitErr))
		require.Equal(t, 1, exitErr.Code)
	}
}

func TestExitError(t *testing.T) {
	plain := &ExitError{Code: 1}
	require.Equal(t, "exit status 1", plain.Error())

	cause := errors.New("boom")
	wrapped := &ExitError{Code: 2, Err: cause}
	require.Equal(t, "boom", wrapped.Error())
	require.ErrorIs(t, wrapped, cause)

	var target *ExitError
	require.True(t, errors.As(fmt.Errorf("wrap: %w", wrapped), &target))
	require.Equal(t, 2, target.Code)
}
