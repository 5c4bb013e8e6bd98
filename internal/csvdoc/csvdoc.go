// Package csvdoc parses raw CSV text into an in-memory document of
// header names and rows keyed by column name.
package csvdoc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeaders indicates the input contains no header row.
var ErrNoHeaders = errors.New("csv data has no header row")

// ErrMalformedRow indicates a data row lacks a value for a column
// referenced by the selection or the filters.
var ErrMalformedRow = errors.New("malformed row")

// Row maps column names to cell values for a single data row.
type Row map[string]string

// Document is a fully buffered CSV document: the ordered header row
// plus all data rows in input order.
type Document struct {
	Headers []string
	Rows    []Row
}

// Parse reads csvData into a Document. The first record is the header
// row; every following record is a data row. Short records produce
// partial row maps — the missing columns surface downstream as
// malformed-row errors when referenced. Cells beyond the header width
// are dropped.
func Parse(csvData string) (*Document, error) {
	r := csv.NewReader(strings.NewReader(csvData))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeaders
	}

	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	doc := &Document{Headers: headers}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		row := make(Row, len(headers))

		for i, name := range headers {
			if i < len(record) {
				row[name] = record[i]
			}
		}

		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}
