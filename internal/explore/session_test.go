// SPDX-License-Identifier: MPL-2.0

package explore

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triagram/hdf5printer/internal/container"
)

type trackingCloser struct {
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func memOpen(root container.Group, closer io.Closer) OpenFunc {
	return func(path string) (container.Group, io.Closer, error) {
		return root, closer, nil
	}
}

func sampleRoot() *container.MemGroup {
	return container.NewMemRoot(
		[]container.Attribute{{Name: "title", Value: container.StringValue("demo")}},
		container.NewMemDataset("/", "values", []uint64{3}, "int32", func() (container.Value, error) {
			return int32Value([]uint64{3}, 1, 2, 3), nil
		}),
	)
}

func TestExplore_ConsoleSession(t *testing.T) {
	closer := &trackingCloser{}
	var out bytes.Buffer
	e := NewExplorer(DefaultRenderConfig(), Options{
		Stdout: &out,
		Open:   memOpen(sampleRoot(), closer),
	})

	require.NoError(t, e.Explore("data.h5"))
	require.True(t, closer.closed, "container handle must be released")

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "HDF5 File Structure: data.h5", lines[0])
	require.Equal(t, strings.Repeat("=", 60), lines[1])
	require.Equal(t, "Group: /", lines[2])
	require.Contains(t, out.String(), "\n\nStructure exploration completed.\n")
}

func TestExploreToFile_SinkMatchesTraversalBody(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.txt")
	closer := &trackingCloser{}
	var console bytes.Buffer
	e := NewExplorer(DefaultRenderConfig(), Options{
		Stdout: &console,
		Open:   memOpen(sampleRoot(), closer),
	})

	require.NoError(t, e.ExploreToFile("data.h5", outPath))
	require.True(t, closer.closed)

	saved, err := os.ReadFile(outPath)
	require.NoError(t, err)

	// The file holds exactly the separator plus the traversal body; the
	// console additionally gets the completion notice.
	require.True(t, strings.HasPrefix(console.String(), string(saved)))
	require.Contains(t, console.String(), "Results saved to: "+outPath)
	require.NotContains(t, string(saved), "Results saved to:")

	require.True(t, strings.HasPrefix(string(saved), strings.Repeat("=", 60)+"\n"))
	require.Contains(t, string(saved), "Group: /")
	require.Contains(t, string(saved), "  │    └─ Data: [1 2 3]")
}

func TestExploreToFile_RepeatedRunsAreByteIdentical(t *testing.T) {
	dir := t.TempDir()
	e := NewExplorer(DefaultRenderConfig(), Options{
		Stdout: io.Discard,
		Open:   memOpen(sampleRoot(), &trackingCloser{}),
	})

	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, e.ExploreToFile("data.h5", first))
	require.NoError(t, e.ExploreToFile("data.h5", second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestExploreToFile_SinkCreateFailure(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "no-such-dir", "report.txt")
	e := NewExplorer(DefaultRenderConfig(), Options{
		Stdout: io.Discard,
		Open:   memOpen(sampleRoot(), &trackingCloser{}),
	})

	err := e.ExploreToFile("data.h5", outPath)
	require.ErrorIs(t, err, ErrOutputFile)
}

func TestExploreToFile_MissingSource_NoOutputFileCreated(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "missing.h5")
	outPath := filepath.Join(t.TempDir(), "report.txt")

	e := NewExplorer(DefaultRenderConfig(), Options{Stdout: io.Discard})

	err := e.ExploreToFile(srcPath, outPath)
	require.ErrorIs(t, err, container.ErrNotFound)

	_, statErr := os.Stat(outPath)
	require.True(t, os.IsNotExist(statErr), "no output file may be created for a missing source")
}

func TestExplore_UnreadableSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "not_hdf5.h5")
	require.NoError(t, os.WriteFile(srcPath, []byte("plain text, not a container"), 0o644))

	e := NewExplorer(DefaultRenderConfig(), Options{Stdout: io.Discard})

	err := e.Explore(srcPath)
	require.ErrorIs(t, err, container.ErrUnreadable)
}
