// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"fmt"
)

// FormatError reports a malformed, truncated or unrecognized file. Offset is
// relative to the start of Section.
type FormatError struct {
	Section string
	Offset  int
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("md2: bad %s at offset %d: %s", e.Section, e.Offset, e.Reason)
}

func formatErrorf(section string, offset int, format string, args ...any) error {
	return &FormatError{
		Section: section,
		Offset:  offset,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// IndexError reports an index outside of its declared range. The model stays
// usable after an IndexError.
type IndexError struct {
	Kind  string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("md2: %s index %d out of range [0,%d)", e.Kind, e.Index, e.Limit)
}
