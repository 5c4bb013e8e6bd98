// Package engine applies a filter set to CSV rows and projects the
// survivors onto the selected columns.
package engine

import (
	"fmt"

	"github.com/GuilhermeCAz/csvslice/internal/csvdoc"
	"github.com/GuilhermeCAz/csvslice/internal/filter"
)

// Apply iterates doc's rows in input order, keeps every row matching
// the filter set, and projects it onto exactly the selected headers,
// dropping unselected columns. A row missing a column referenced by
// the selection or the filters aborts the run with a malformed-row
// error naming the row and column.
func Apply(doc *csvdoc.Document, selected []string, filters *filter.Set) ([]csvdoc.Row, error) {
	projected := make([]csvdoc.Row, 0, len(doc.Rows))

	for i, row := range doc.Rows {
		ok, err := filters.Matches(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		if !ok {
			continue
		}

		out := make(csvdoc.Row, len(selected))

		for _, column := range selected {
			cell, exists := row[column]
			if !exists {
				return nil, fmt.Errorf("row %d: no value for column %q: %w", i+1, column, csvdoc.ErrMalformedRow)
			}

			out[column] = cell
		}

		projected = append(projected, out)
	}

	return projected, nil
}
