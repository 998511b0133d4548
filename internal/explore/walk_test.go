// SPDX-License-Identifier: MPL-2.0

package explore

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triagram/hdf5printer/internal/container"
)

func int32Value(shape []uint64, vals ...int32) container.Value {
	elems := make([]any, len(vals))
	for i, v := range vals {
		elems[i] = v
	}
	return container.ArrayValue{Shape: shape, Dtype: "int32", Elems: elems}
}

func TestWalk_GroupWithDataset(t *testing.T) {
	root := container.NewMemRoot(nil,
		container.NewMemDataset("/", "values", []uint64{3}, "int32", func() (container.Value, error) {
			return int32Value([]uint64{3}, 1, 2, 3), nil
		}),
	)

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	require.NoError(t, w.Walk(root))

	want := strings.Join([]string{
		"Group: /",
		"  ├─ Dataset: values",
		"  │    ├─ Path: /values",
		"  │    ├─ Shape: [3]",
		"  │    ├─ Dtype: int32",
		"  │    ├─ Size: 3 elements",
		"  │    └─ Data: [1 2 3]",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestWalk_AttributesInNativeOrder(t *testing.T) {
	attrs := []container.Attribute{
		{Name: "zebra", Value: container.StringValue("last defined first")},
		{Name: "alpha", Value: container.StringValue("defined second")},
		{Name: "empty", Value: container.ArrayValue{Shape: []uint64{0}, Dtype: "int32"}},
	}
	root := container.NewMemRoot(attrs)

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	require.NoError(t, w.Walk(root))

	want := strings.Join([]string{
		"Group: /",
		"  ├─ Attribute: zebra = last defined first",
		"  ├─ Attribute: alpha = defined second",
		"  ├─ Attribute: empty = [] (empty array)",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestWalk_NestedGroups_IndentDeepensByTwoLevels(t *testing.T) {
	inner := container.NewMemGroup("/outer", "inner", nil)
	outer := container.NewMemGroup("/", "outer", nil, inner)
	root := container.NewMemRoot(nil, outer)

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	require.NoError(t, w.Walk(root))

	want := strings.Join([]string{
		"Group: /",
		"  ├─ Subgroup: outer",
		"    Group: /outer",
		"      ├─ Subgroup: inner",
		"        Group: /outer/inner",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestWalk_OversizedDataset_SkippedWithoutReading(t *testing.T) {
	read := false
	root := container.NewMemRoot(nil,
		container.NewMemDataset("/", "big", []uint64{1000}, "float64", func() (container.Value, error) {
			read = true
			return nil, nil
		}),
	)

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	require.NoError(t, w.Walk(root))

	require.False(t, read, "oversized payload must never be materialized")
	require.Contains(t, out.String(), "  │    └─ Data: <too large (1000 elements), skipping display>")
}

func TestWalk_ReadFailure_RenderedInlineAndTraversalContinues(t *testing.T) {
	root := container.NewMemRoot(nil,
		container.NewMemDataset("/", "broken", []uint64{2}, "int32", func() (container.Value, error) {
			return nil, errors.New("unsupported filter")
		}),
		container.NewMemDataset("/", "fine", []uint64{2}, "int32", func() (container.Value, error) {
			return int32Value([]uint64{2}, 7, 8), nil
		}),
	)

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	require.NoError(t, w.Walk(root))

	require.Contains(t, out.String(), "  │    └─ Data: <error reading: unsupported filter>")
	require.Contains(t, out.String(), "  ├─ Dataset: fine")
	require.Contains(t, out.String(), "  │    └─ Data: [7 8]")
}

func TestWalk_DatasetAttributes_NestedConnector(t *testing.T) {
	ds := container.NewMemDataset("/", "values", []uint64{1}, "int32", func() (container.Value, error) {
		return int32Value([]uint64{1}, 9), nil
	})
	ds.Attrs = []container.Attribute{{Name: "units", Value: container.StringValue("meters")}}
	root := container.NewMemRoot(nil, ds)

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	require.NoError(t, w.Walk(root))

	require.Contains(t, out.String(), "  │    ├─ Attribute: units = meters")
}

func TestWalk_DualSink_ByteIdenticalCopies(t *testing.T) {
	root := container.NewMemRoot(
		[]container.Attribute{{Name: "title", Value: container.StringValue("demo")}},
		container.NewMemDataset("/", "values", []uint64{2}, "int32", func() (container.Value, error) {
			return int32Value([]uint64{2}, 1, 2), nil
		}),
	)

	var console, sink bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &console, &sink, nil)
	require.NoError(t, w.Walk(root))

	require.NotEmpty(t, console.String())
	require.Equal(t, console.String(), sink.String())
}

func TestWalk_Idempotent(t *testing.T) {
	root := container.NewMemRoot(nil,
		container.NewMemGroup("/", "sub", nil,
			container.NewMemDataset("/sub", "values", []uint64{3}, "int32", func() (container.Value, error) {
				return int32Value([]uint64{3}, 1, 2, 3), nil
			}),
		),
	)

	var first, second bytes.Buffer
	require.NoError(t, NewWalker(DefaultRenderConfig(), &first, nil, nil).Walk(root))
	require.NoError(t, NewWalker(DefaultRenderConfig(), &second, nil, nil).Walk(root))
	require.Equal(t, first.String(), second.String())
}

func TestWalk_ChildListingFailure_Propagates(t *testing.T) {
	boom := errors.New("corrupt btree node")
	root := container.NewMemRoot(nil)
	root.ChildrenErr = boom

	var out bytes.Buffer
	w := NewWalker(DefaultRenderConfig(), &out, nil, nil)
	err := w.Walk(root)
	require.ErrorIs(t, err, boom)
}
