// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// OpenHDF5 opens an HDF5 file and returns its root group together with a
// closer for the underlying file handle. A missing path maps to ErrNotFound;
// a path that exists but is not a readable HDF5 file maps to ErrUnreadable.
func OpenHDF5(path string) (Group, io.Closer, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	f, err := hdf5.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return &hdf5Group{g: f.Root()}, f, nil
}

type hdf5Group struct {
	g *hdf5.Group
}

func (g *hdf5Group) Name() string { return g.g.Name() }
func (g *hdf5Group) Path() string { return g.g.Path() }

func (g *hdf5Group) Attributes() []Attribute {
	return readAttributes(g.g.Attrs(), g.g.Attr)
}

// Children opens every member in native link order, tagging each as a group
// or a dataset. A member that opens as neither aborts the listing; the
// session boundary reports it.
func (g *hdf5Group) Children() ([]Node, error) {
	names, err := g.g.Members()
	if err != nil {
		return nil, fmt.Errorf("listing members of %s: %w", g.g.Path(), err)
	}

	children := make([]Node, 0, len(names))
	for _, name := range names {
		if sub, err := g.g.OpenGroup(name); err == nil {
			children = append(children, &hdf5Group{g: sub})
			continue
		}
		ds, err := g.g.OpenDataset(name)
		if err != nil {
			return nil, fmt.Errorf("opening member %q of %s: %w", name, g.g.Path(), err)
		}
		children = append(children, &hdf5Dataset{d: ds})
	}
	return children, nil
}

func (g *hdf5Group) isNode() {}

type hdf5Dataset struct {
	d *hdf5.Dataset
}

func (d *hdf5Dataset) Name() string    { return d.d.Name() }
func (d *hdf5Dataset) Path() string    { return d.d.Path() }
func (d *hdf5Dataset) Shape() []uint64 { return d.d.Shape() }
func (d *hdf5Dataset) Size() uint64    { return d.d.NumElements() }

func (d *hdf5Dataset) Attributes() []Attribute {
	return readAttributes(d.d.Attrs(), d.d.Attr)
}

// Dtype names the element type through its Go equivalent, e.g. "int32".
func (d *hdf5Dataset) Dtype() string {
	t, err := d.d.GoType()
	if err != nil {
		return "unknown"
	}
	return t.String()
}

// ReadValue materializes the full payload as a Value variant. Scalar
// datasets resolve to a string or opaque scalar; typed arrays resolve to
// ArrayValue; anything else is surfaced as its raw bytes.
func (d *hdf5Dataset) ReadValue() (Value, error) {
	t, err := d.d.GoType()
	if err != nil {
		raw, rawErr := d.d.ReadRaw()
		if rawErr != nil {
			return nil, rawErr
		}
		return BytesValue(raw), nil
	}

	elems, dtype, err := d.readElements(t)
	if err != nil {
		return nil, err
	}

	if d.d.IsScalar() {
		if len(elems) == 0 {
			return OpaqueValue{V: nil}, nil
		}
		if s, ok := elems[0].(string); ok {
			return StringValue(s), nil
		}
		return OpaqueValue{V: elems[0]}, nil
	}

	return ArrayValue{Shape: d.d.Shape(), Dtype: dtype, Elems: elems}, nil
}

// readElements reads the payload with the typed reader matching t.
func (d *hdf5Dataset) readElements(t reflect.Type) ([]any, string, error) {
	switch t.Kind() {
	case reflect.String:
		vals, err := d.d.ReadString()
		return anySlice(vals), "string", err
	case reflect.Int8:
		vals, err := d.d.ReadInt8()
		return anySlice(vals), "int8", err
	case reflect.Int16:
		vals, err := d.d.ReadInt16()
		return anySlice(vals), "int16", err
	case reflect.Int32:
		vals, err := d.d.ReadInt32()
		return anySlice(vals), "int32", err
	case reflect.Int64:
		vals, err := d.d.ReadInt64()
		return anySlice(vals), "int64", err
	case reflect.Uint8:
		vals, err := d.d.ReadUint8()
		return anySlice(vals), "uint8", err
	case reflect.Uint16:
		vals, err := d.d.ReadUint16()
		return anySlice(vals), "uint16", err
	case reflect.Uint32:
		vals, err := d.d.ReadUint32()
		return anySlice(vals), "uint32", err
	case reflect.Uint64:
		vals, err := d.d.ReadUint64()
		return anySlice(vals), "uint64", err
	case reflect.Float32:
		vals, err := d.d.ReadFloat32()
		return anySlice(vals), "float32", err
	case reflect.Float64:
		vals, err := d.d.ReadFloat64()
		return anySlice(vals), "float64", err
	default:
		raw, err := d.d.ReadRaw()
		return anySlice(raw), t.String(), err
	}
}

func (d *hdf5Dataset) isNode() {}

// readAttributes converts the named attributes of a group or dataset into
// Attribute values in native order. A value that fails to read becomes an
// opaque placeholder so that one bad attribute never aborts the listing.
func readAttributes(names []string, lookup func(string) *hdf5.Attribute) []Attribute {
	attrs := make([]Attribute, 0, len(names))
	for _, name := range names {
		a := lookup(name)
		if a == nil {
			continue
		}
		v, err := a.Value()
		if err != nil {
			attrs = append(attrs, Attribute{
				Name:  name,
				Value: OpaqueValue{V: fmt.Sprintf("<error reading: %v>", err)},
			})
			continue
		}
		attrs = append(attrs, Attribute{Name: name, Value: toValue(v, a.Shape())})
	}
	return attrs
}

// toValue maps an auto-typed attribute value onto the Value union. Slices
// become arrays, text stays text, raw bytes stay bytes, and everything else
// (numeric scalars, compound maps) falls through to the opaque kind.
func toValue(v any, shape []uint64) Value {
	switch val := v.(type) {
	case string:
		return StringValue(val)
	case []byte:
		return BytesValue(val)
	case []int64:
		return ArrayValue{Shape: sliceShape(shape, len(val)), Dtype: "int64", Elems: anySlice(val)}
	case []uint64:
		return ArrayValue{Shape: sliceShape(shape, len(val)), Dtype: "uint64", Elems: anySlice(val)}
	case []float64:
		return ArrayValue{Shape: sliceShape(shape, len(val)), Dtype: "float64", Elems: anySlice(val)}
	case []string:
		return ArrayValue{Shape: sliceShape(shape, len(val)), Dtype: "string", Elems: anySlice(val)}
	default:
		return OpaqueValue{V: v}
	}
}

// sliceShape prefers the declared dataspace shape and falls back to a 1-D
// shape derived from the element count.
func sliceShape(shape []uint64, n int) []uint64 {
	if len(shape) > 0 {
		return shape
	}
	return []uint64{uint64(n)}
}

func anySlice[T any](vals []T) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
