// SPDX-License-Identifier: MPL-2.0

package container

// Value is a closed union over the value kinds an attribute or a dataset
// payload can take. Exactly four kinds exist: numeric/homogeneous arrays,
// raw byte sequences, text, and an explicit opaque fallback for everything
// else. Consumers dispatch with a type switch over these four types.
type Value interface {
	isValue()
}

type (
	// ArrayValue is a fixed-shape, homogeneously typed array. Elems holds
	// every element in storage order; len(Elems) equals the product of Shape.
	ArrayValue struct {
		// Shape lists the dimension extents in storage order.
		Shape []uint64
		// Dtype names the element type (e.g. "int32", "float64").
		Dtype string
		// Elems holds the scalar elements in storage order.
		Elems []any
	}

	// BytesValue is an uninterpreted byte sequence.
	BytesValue []byte

	// StringValue is a text value.
	StringValue string

	// OpaqueValue wraps anything that is not an array, byte sequence, or
	// string. It renders through the generic text form of the wrapped value.
	OpaqueValue struct {
		V any
	}
)

func (ArrayValue) isValue()  {}
func (BytesValue) isValue()  {}
func (StringValue) isValue() {}
func (OpaqueValue) isValue() {}

// Size returns the total element count.
func (a ArrayValue) Size() int {
	return len(a.Elems)
}

// Attribute is a named metadata value attached to a group or dataset.
// Attributes are leaves; their values are never traversed.
type Attribute struct {
	Name  string
	Value Value
}
