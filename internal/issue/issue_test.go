// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet_KnownIssues(t *testing.T) {
	for _, id := range []Id{
		FileNotFoundId,
		UnreadableFileId,
		DataReadFailedId,
		OutputWriteFailedId,
		ConfigLoadFailedId,
	} {
		i := Get(id)
		require.NotNil(t, i, "issue %d must be registered", id)
		require.Equal(t, id, i.Id())
		require.NotEmpty(t, i.MarkdownMsg())
	}
}

func TestGet_UnknownIssue(t *testing.T) {
	require.Nil(t, Get(Id(9999)))
}

func TestValues_CoversAllRegisteredIssues(t *testing.T) {
	require.Len(t, Values(), 5)
}

func TestRender_ProducesText(t *testing.T) {
	// Swap the renderer so the test does not depend on terminal detection.
	orig := render
	render = func(in, stylePath string) (string, error) { return in, nil }
	t.Cleanup(func() { render = orig })

	out, err := Get(FileNotFoundId).Render("dark")
	require.NoError(t, err)
	require.Contains(t, out, "HDF5 file not found")
}
