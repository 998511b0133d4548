// SPDX-License-Identifier: MPL-2.0

package explore

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/triagram/hdf5printer/internal/container"
)

const (
	// DefaultMaxDisplayItems is the default element budget for arrays and
	// dataset payloads.
	DefaultMaxDisplayItems = 10
	// DefaultMaxStringLength is the default character budget for text and
	// the decode threshold for byte sequences.
	DefaultMaxStringLength = 100
)

// RenderConfig bounds how much of a value makes it into the report. It is
// immutable for the lifetime of one exploration session and safe to reuse
// across sequential sessions.
type RenderConfig struct {
	// MaxDisplayItems bounds both the number of printed array elements and
	// the dataset size up to which payloads are materialized at all.
	MaxDisplayItems int
	// MaxStringLength bounds printed text length and decides whether a byte
	// sequence is short enough to decode as text.
	MaxStringLength int
}

// DefaultRenderConfig returns the stock limits.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDisplayItems: DefaultMaxDisplayItems,
		MaxStringLength: DefaultMaxStringLength,
	}
}

// Formatter renders a Value as a bounded-length, human-readable string.
type Formatter struct {
	cfg RenderConfig
}

// NewFormatter creates a Formatter with the given limits. Negative limits
// behave as zero; the formatter never panics on any input.
func NewFormatter(cfg RenderConfig) Formatter {
	if cfg.MaxDisplayItems < 0 {
		cfg.MaxDisplayItems = 0
	}
	if cfg.MaxStringLength < 0 {
		cfg.MaxStringLength = 0
	}
	return Formatter{cfg: cfg}
}

// Format renders v. It is a pure function of v and the configured limits and
// never fails; read errors are the caller's concern, not the formatter's.
func (f Formatter) Format(v container.Value) string {
	switch val := v.(type) {
	case container.ArrayValue:
		return f.formatArray(val)
	case container.BytesValue:
		return f.formatBytes(val)
	case container.StringValue:
		return f.formatString(string(val))
	case container.OpaqueValue:
		return fmt.Sprint(val.V)
	default:
		// The Value union is closed; nothing else can reach here.
		return fmt.Sprint(v)
	}
}

func (f Formatter) formatArray(a container.ArrayValue) string {
	size := a.Size()
	if size == 0 {
		return "[] (empty array)"
	}

	if size <= f.cfg.MaxDisplayItems {
		return fmt.Sprint(a.Elems)
	}

	if len(a.Shape) == 1 {
		// Head/tail elision. Both ends take floor(max/2) elements, so an
		// odd budget prints one element fewer than the budget names.
		half := f.cfg.MaxDisplayItems / 2
		head := joinElems(a.Elems[:half])
		tail := joinElems(a.Elems[size-half:])
		return fmt.Sprintf("[%s ... %s] (shape=%v, first/last %d items)",
			head, tail, a.Shape, f.cfg.MaxDisplayItems)
	}

	return fmt.Sprintf("<array of shape %v dtype=%s> (too large to display)", a.Shape, a.Dtype)
}

func (f Formatter) formatBytes(b container.BytesValue) string {
	// Strict less-than: a byte sequence exactly at the limit is summarized.
	if len(b) < f.cfg.MaxStringLength {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return fmt.Sprintf("<bytes of length %d>", len(b))
}

func (f Formatter) formatString(s string) string {
	runes := []rune(s)
	if len(runes) <= f.cfg.MaxStringLength {
		return s
	}
	return string(runes[:f.cfg.MaxStringLength]) + "... [truncated]"
}

func joinElems(elems []any) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ", ")
}
