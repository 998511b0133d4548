// SPDX-License-Identifier: MPL-2.0

package explore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/triagram/hdf5printer/internal/container"
)

// separatorWidth is the width of the session separator line.
const separatorWidth = 60

// ErrOutputFile reports that the report file could not be created or
// finalized. Callers match it with errors.Is to distinguish sink failures
// from source failures.
var ErrOutputFile = errors.New("output file write failed")

// OpenFunc opens a container file and yields its root group plus a closer
// for the underlying handle.
type OpenFunc func(path string) (container.Group, io.Closer, error)

// Explorer runs one exploration session per call: it opens the container,
// wraps the traversal with the session chrome, and guarantees the optional
// output file is closed on every exit path.
type Explorer struct {
	cfg    RenderConfig
	stdout io.Writer
	logger *log.Logger
	open   OpenFunc
}

// Options injects the Explorer's collaborators. Nil fields get production
// defaults: os.Stdout and the HDF5 backend.
type Options struct {
	Stdout io.Writer
	Logger *log.Logger
	Open   OpenFunc
}

// NewExplorer creates an Explorer with the given limits.
func NewExplorer(cfg RenderConfig, opts Options) *Explorer {
	e := &Explorer{
		cfg:    cfg,
		stdout: opts.Stdout,
		logger: opts.Logger,
		open:   opts.Open,
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.open == nil {
		e.open = container.OpenHDF5
	}
	return e
}

// Explore traverses srcPath and writes the report to the console stream
// only, framed by the source header and a completion footer.
func (e *Explorer) Explore(srcPath string) error {
	root, closer, err := e.open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if e.logger != nil {
		e.logger.Debug("container opened", "path", srcPath)
	}

	w := NewWalker(e.cfg, e.stdout, nil, e.logger)
	w.emit("HDF5 File Structure: " + srcPath)
	w.emit(strings.Repeat("=", separatorWidth))

	if err := w.Walk(root); err != nil {
		return err
	}

	w.emit("")
	w.emit("Structure exploration completed.")
	return nil
}

// ExploreToFile traverses srcPath and writes the report both to the console
// stream and to outPath. The container is opened before the sink so that a
// missing or unreadable source never leaves an output file behind. The sink
// is closed on every exit path; a failure partway through leaves a partial
// file, which is acceptable.
func (e *Explorer) ExploreToFile(srcPath, outPath string) error {
	root, closer, err := e.open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrOutputFile, outPath, err)
	}
	defer func() { _ = out.Close() }()

	if e.logger != nil {
		e.logger.Debug("container opened", "path", srcPath, "output", outPath)
	}

	w := NewWalker(e.cfg, e.stdout, out, e.logger)
	w.emit(strings.Repeat("=", separatorWidth))

	if err := w.Walk(root); err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrOutputFile, outPath, err)
	}
	fmt.Fprintf(e.stdout, "Results saved to: %s\n", outPath)
	return nil
}
