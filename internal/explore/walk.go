// SPDX-License-Identifier: MPL-2.0

package explore

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/triagram/hdf5printer/internal/container"
)

// Walker traverses a container tree depth-first in native order and writes
// one report line per visited entity. Every line goes to the console writer
// and, when configured, to an additional sink in the same call, so both
// receive byte-identical text.
type Walker struct {
	cfg    RenderConfig
	fmtr   Formatter
	out    io.Writer
	sink   io.Writer
	logger *log.Logger
}

// NewWalker creates a Walker writing to out and, if sink is non-nil, to sink
// as well. logger may be nil.
func NewWalker(cfg RenderConfig, out, sink io.Writer, logger *log.Logger) *Walker {
	return &Walker{
		cfg:    cfg,
		fmtr:   NewFormatter(cfg),
		out:    out,
		sink:   sink,
		logger: logger,
	}
}

// Walk traverses the tree rooted at group. Per-payload read failures are
// rendered inline and never abort the walk; structural failures (a child
// listing that cannot be read) propagate to the caller.
func (w *Walker) Walk(group container.Group) error {
	return w.walkGroup(group, 0)
}

// walkGroup emits the group header, its attributes, then each child in
// native order. Sub-groups recurse two depth units deeper; the intermediate
// unit keeps the "Subgroup:" line visually between parent and child headers.
func (w *Walker) walkGroup(group container.Group, depth int) error {
	indent := strings.Repeat("  ", depth)
	w.emit(indent + "Group: " + group.Path())

	w.emitAttributes(group.Attributes(), indent)

	children, err := group.Children()
	if err != nil {
		return err
	}
	for _, child := range children {
		switch node := child.(type) {
		case container.Group:
			w.emit(indent + "  ├─ Subgroup: " + node.Name())
			if err := w.walkGroup(node, depth+2); err != nil {
				return err
			}
		case container.Dataset:
			w.emitDataset(node, indent)
		}
	}
	return nil
}

func (w *Walker) emitAttributes(attrs []container.Attribute, indent string) {
	for _, attr := range attrs {
		w.emit(indent + "  ├─ Attribute: " + attr.Name + " = " + w.fmtr.Format(attr.Value))
	}
}

func (w *Walker) emitDataset(ds container.Dataset, indent string) {
	w.emit(indent + "  ├─ Dataset: " + ds.Name())

	meta := indent + "  │    ├─ "
	w.emit(meta + "Path: " + ds.Path())
	w.emit(meta + fmt.Sprintf("Shape: %v", ds.Shape()))
	w.emit(meta + "Dtype: " + ds.Dtype())
	w.emit(meta + fmt.Sprintf("Size: %d elements", ds.Size()))

	w.emitAttributes(ds.Attributes(), indent+"  │  ")

	w.emitDatasetContent(ds, indent)
}

// emitDatasetContent materializes the payload only when it fits the display
// budget. Oversized payloads are skipped without being read; a failed read
// becomes a placeholder line and traversal continues.
func (w *Walker) emitDatasetContent(ds container.Dataset, indent string) {
	prefix := indent + "  │    └─ "

	size := ds.Size()
	if w.cfg.MaxDisplayItems < 0 || size > uint64(w.cfg.MaxDisplayItems) {
		w.emit(prefix + fmt.Sprintf("Data: <too large (%d elements), skipping display>", size))
		return
	}

	value, err := ds.ReadValue()
	if err != nil {
		if w.logger != nil {
			w.logger.Debug("dataset payload read failed", "path", ds.Path(), "err", err)
		}
		w.emit(prefix + fmt.Sprintf("Data: <error reading: %v>", err))
		return
	}
	w.emit(prefix + "Data: " + w.fmtr.Format(value))
}

// emit writes one line to the console stream and to the optional sink in a
// single call, keeping the two copies in lockstep.
func (w *Walker) emit(line string) {
	fmt.Fprintln(w.out, line)
	if w.sink != nil {
		fmt.Fprintln(w.sink, line)
	}
}
