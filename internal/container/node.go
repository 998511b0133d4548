// SPDX-License-Identifier: MPL-2.0

package container

import "errors"

// Sentinel errors distinguishing the two ways opening a container can fail.
var (
	// ErrNotFound reports that the source path does not exist.
	ErrNotFound = errors.New("container file not found")
	// ErrUnreadable reports that the source path exists but cannot be
	// opened as a valid container file.
	ErrUnreadable = errors.New("container file unreadable")
)

// Node is one entity in the container tree. Exactly two kinds implement it:
// Group and Dataset. Walkers dispatch with a type switch over those two.
type Node interface {
	// Name returns the node's own name (last path component).
	Name() string
	// Path returns the absolute path from the root.
	Path() string
	// Attributes returns the node's attributes in the container's native
	// definition order. Values that fail to read are surfaced as opaque
	// placeholder values rather than aborting iteration.
	Attributes() []Attribute

	isNode()
}

// Group is a named node holding attributes and ordered child nodes.
type Group interface {
	Node

	// Children returns the direct children in native definition order,
	// each one a Group or a Dataset.
	Children() ([]Node, error)
}

// Dataset is a named leaf node holding a fixed-shape, homogeneously typed
// payload. The payload is materialized on demand through ReadValue and is
// never read implicitly.
type Dataset interface {
	Node

	// Shape returns the dimension extents; empty for scalar datasets.
	Shape() []uint64
	// Dtype names the element type.
	Dtype() string
	// Size returns the total element count (product of Shape, 0 if empty).
	Size() uint64
	// ReadValue materializes the full payload. It may fail, for example on
	// unsupported filters; callers recover locally and keep traversing.
	ReadValue() (Value, error)
}
