// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionableError_Error(t *testing.T) {
	err := &ActionableError{
		Operation: "explore HDF5 file",
		Resource:  "data.h5",
		Cause:     errors.New("superblock signature mismatch"),
	}
	require.Equal(t, "failed to explore HDF5 file: data.h5: superblock signature mismatch", err.Error())
}

func TestActionableError_ErrorWithoutResourceOrCause(t *testing.T) {
	err := NewActionableError("load configuration")
	require.Equal(t, "failed to load configuration", err.Error())
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapWithOperation(cause, "open output file")
	require.ErrorIs(t, err, cause)
}

func TestWrapWithOperation_NilError(t *testing.T) {
	require.Nil(t, WrapWithOperation(nil, "anything"))
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("write report").
		WithResource("/readonly/report.txt").
		WithSuggestion("Check directory permissions").
		WithSuggestion("Pick another output path with --output").
		Wrap(cause).
		Build()

	require.NotNil(t, err)
	require.Equal(t, "write report", err.Operation)
	require.Equal(t, "/readonly/report.txt", err.Resource)
	require.Len(t, err.Suggestions, 2)
	require.ErrorIs(t, err, cause)
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	require.Nil(t, NewErrorContext().WithResource("x").Build())
	require.NoError(t, NewErrorContext().WithResource("x").BuildError())
}

func TestActionableError_Format(t *testing.T) {
	inner := errors.New("bad magic")
	err := NewErrorContext().
		WithOperation("open container").
		WithResource("data.h5").
		WithSuggestion("Verify the file is HDF5").
		Wrap(inner).
		Build()

	plain := err.Format(false)
	require.Contains(t, plain, "failed to open container: data.h5: bad magic")
	require.Contains(t, plain, "• Verify the file is HDF5")
	require.NotContains(t, plain, "Error chain:")

	verbose := err.Format(true)
	require.Contains(t, verbose, "Error chain:")
	require.Contains(t, verbose, "1. bad magic")
}
