// Package header resolves and validates the requested column subset
// against a CSV header row.
package header

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColumn indicates a referenced column does not exist in the
// header row.
var ErrUnknownColumn = errors.New("unknown column")

// Set is an ordered collection of header names with a map-backed index
// for constant-time membership checks.
type Set struct {
	names []string
	index map[string]int
}

// NewSet builds a Set from the header row names, preserving their
// original order. Duplicate names keep their first position.
func NewSet(names []string) Set {
	index := make(map[string]int, len(names))

	for i, name := range names {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	return Set{names: names, index: index}
}

// Names returns the header names in original order.
func (s Set) Names() []string {
	return s.names
}

// Contains reports whether name exists in the header row.
func (s Set) Contains(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Select resolves the requested column list. An empty request selects
// all headers in original order; otherwise the comma-separated names
// are returned in request order, not yet validated or reordered.
func (s Set) Select(requested string) []string {
	if requested == "" {
		return append([]string(nil), s.names...)
	}

	return strings.Split(requested, ",")
}

// Validate fails with ErrUnknownColumn when any selected name is
// absent from the header row. The offending name is included verbatim.
func (s Set) Validate(selected []string) error {
	for _, name := range selected {
		if !s.Contains(name) {
			return fmt.Errorf("column %q not found in header row: %w", name, ErrUnknownColumn)
		}
	}

	return nil
}

// Reorder filters the header row down to the selected names, yielding
// header-row order regardless of the order the names were requested.
// Duplicate requested names collapse to a single occurrence.
func (s Set) Reorder(selected []string) []string {
	want := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		want[name] = struct{}{}
	}

	reordered := make([]string, 0, len(selected))

	for _, name := range s.names {
		if _, ok := want[name]; ok {
			reordered = append(reordered, name)
		}
	}

	return reordered
}
