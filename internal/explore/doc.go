// SPDX-License-Identifier: MPL-2.0

// Package explore implements the traversal and formatting engine: a
// recursive depth-first walk over a container tree that emits one indented,
// connector-decorated line per entity, and a size-aware value formatter that
// keeps large arrays and long strings from flooding the report.
package explore
