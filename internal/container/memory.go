// SPDX-License-Identifier: MPL-2.0

package container

import "path"

// MemGroup is an in-memory Group. It backs tests and programmatic trees.
type MemGroup struct {
	GroupName string
	GroupPath string
	Attrs     []Attribute
	Members   []Node
	// ChildrenErr, when set, makes Children fail. Tests use it to simulate
	// structural corruption.
	ChildrenErr error
}

// MemDataset is an in-memory Dataset. ReadFunc supplies the payload on
// demand; leaving it nil makes materialization fail, which is useful for
// asserting that oversized payloads are never read.
type MemDataset struct {
	DatasetName  string
	DatasetPath  string
	Attrs        []Attribute
	DatasetShape []uint64
	DatasetDtype string
	ReadFunc     func() (Value, error)
}

// NewMemRoot builds an in-memory root group.
func NewMemRoot(attrs []Attribute, members ...Node) *MemGroup {
	return &MemGroup{GroupName: "/", GroupPath: "/", Attrs: attrs, Members: members}
}

// NewMemGroup builds an in-memory group under parentPath.
func NewMemGroup(parentPath, name string, attrs []Attribute, members ...Node) *MemGroup {
	return &MemGroup{
		GroupName: name,
		GroupPath: path.Join(parentPath, name),
		Attrs:     attrs,
		Members:   members,
	}
}

// NewMemDataset builds an in-memory dataset under parentPath.
func NewMemDataset(parentPath, name string, shape []uint64, dtype string, read func() (Value, error)) *MemDataset {
	return &MemDataset{
		DatasetName:  name,
		DatasetPath:  path.Join(parentPath, name),
		DatasetShape: shape,
		DatasetDtype: dtype,
		ReadFunc:     read,
	}
}

func (g *MemGroup) Name() string            { return g.GroupName }
func (g *MemGroup) Path() string            { return g.GroupPath }
func (g *MemGroup) Attributes() []Attribute { return g.Attrs }
func (g *MemGroup) Children() ([]Node, error) {
	if g.ChildrenErr != nil {
		return nil, g.ChildrenErr
	}
	return g.Members, nil
}
func (g *MemGroup) isNode() {}

func (d *MemDataset) Name() string            { return d.DatasetName }
func (d *MemDataset) Path() string            { return d.DatasetPath }
func (d *MemDataset) Attributes() []Attribute { return d.Attrs }
func (d *MemDataset) Shape() []uint64         { return d.DatasetShape }
func (d *MemDataset) Dtype() string           { return d.DatasetDtype }

// Size returns the product of the shape extents.
func (d *MemDataset) Size() uint64 {
	if len(d.DatasetShape) == 0 {
		return 1
	}
	size := uint64(1)
	for _, dim := range d.DatasetShape {
		size *= dim
	}
	return size
}

// ReadValue materializes the payload through ReadFunc.
func (d *MemDataset) ReadValue() (Value, error) {
	if d.ReadFunc == nil {
		return nil, errNoPayload
	}
	return d.ReadFunc()
}

func (d *MemDataset) isNode() {}

var errNoPayload = payloadError("no payload reader configured")

type payloadError string

func (e payloadError) Error() string { return string(e) }
