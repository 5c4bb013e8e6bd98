// Package filter parses row filter definitions and evaluates them
// against CSV rows.
//
// A filter definition is one line of the form <column><operator><value>
// with operator one of !=, >=, <=, =, >, <. Predicates on the same
// column combine with OR; predicates on distinct columns combine with
// AND. All comparisons are lexicographic string comparisons.
package filter

import (
	"errors"
	"fmt"

	"github.com/GuilhermeCAz/csvslice/internal/csvdoc"
	"github.com/GuilhermeCAz/csvslice/internal/header"
)

// ErrInvalidFilter indicates a filter definition line contains none of
// the recognized comparison operators.
var ErrInvalidFilter = errors.New("invalid filter")

// Operator is a comparison operator token.
type Operator string

// Recognized comparison operators.
const (
	OpNotEqual     Operator = "!="
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
)

// operators pairs each operator token with its comparison function, in
// scan priority order. Multi-character tokens come before their
// single-character prefixes so ">=" never parses as ">" followed by a
// value starting with "=".
var operators = []struct {
	token Operator
	cmp   func(lhs, rhs string) bool
}{
	{OpNotEqual, func(lhs, rhs string) bool { return lhs != rhs }},
	{OpGreaterEqual, func(lhs, rhs string) bool { return lhs >= rhs }},
	{OpLessEqual, func(lhs, rhs string) bool { return lhs <= rhs }},
	{OpEqual, func(lhs, rhs string) bool { return lhs == rhs }},
	{OpGreater, func(lhs, rhs string) bool { return lhs > rhs }},
	{OpLess, func(lhs, rhs string) bool { return lhs < rhs }},
}

// apply evaluates lhs <op> rhs as a lexicographic string comparison.
func (o Operator) apply(lhs, rhs string) bool {
	for _, op := range operators {
		if op.token == o {
			return op.cmp(lhs, rhs)
		}
	}

	return false
}

// Predicate is a single (operator, value) condition scoped to one column.
type Predicate struct {
	Op    Operator
	Value string
}

// Set maps column names to their predicates, remembering the order
// columns were first encountered.
type Set struct {
	columns    []string
	predicates map[string][]Predicate
}

// Columns returns the filtered column names in encounter order.
func (s *Set) Columns() []string {
	return s.columns
}

// Predicates returns the predicates registered for column.
func (s *Set) Predicates(column string) []Predicate {
	return s.predicates[column]
}

// Empty reports whether the set holds no predicates at all.
func (s *Set) Empty() bool {
	return len(s.columns) == 0
}

// Validate fails with header.ErrUnknownColumn when a filtered column
// does not exist in the header row.
func (s *Set) Validate(headers header.Set) error {
	for _, column := range s.columns {
		if !headers.Contains(column) {
			return fmt.Errorf("column %q not found in header row: %w", column, header.ErrUnknownColumn)
		}
	}

	return nil
}

// Matches reports whether row satisfies the filter set: at least one
// predicate per filtered column must hold (OR within a column), and
// every filtered column must be satisfied (AND across columns). A row
// lacking a value for a filtered column is malformed.
func (s *Set) Matches(row csvdoc.Row) (bool, error) {
	for _, column := range s.columns {
		cell, ok := row[column]
		if !ok {
			return false, fmt.Errorf("no value for column %q: %w", column, csvdoc.ErrMalformedRow)
		}

		satisfied := false

		for _, pred := range s.predicates[column] {
			if pred.Op.apply(cell, pred.Value) {
				satisfied = true
				break
			}
		}

		if !satisfied {
			return false, nil
		}
	}

	return true, nil
}
