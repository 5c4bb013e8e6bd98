// Package csvslice provides a public Go API for selecting columns and
// filtering rows of CSV data.
//
// This package exposes the csvslice processing pipeline as a library,
// allowing programmatic use without the CLI.
//
// Basic usage:
//
//	result, err := csvslice.Process("header1,header2\n1,2\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.CSV))
//
// With options:
//
//	result, err := csvslice.Process(data,
//	    csvslice.WithColumns("header1,header3"),
//	    csvslice.WithFilters("header1>1\nheader3<9"),
//	)
package csvslice

import (
	"fmt"
	"os"

	"github.com/GuilhermeCAz/csvslice/internal/csvdoc"
	"github.com/GuilhermeCAz/csvslice/internal/engine"
	"github.com/GuilhermeCAz/csvslice/internal/filter"
	"github.com/GuilhermeCAz/csvslice/internal/header"
	"github.com/GuilhermeCAz/csvslice/internal/output"
)

// Option configures the CSV processing pipeline.
// Use the With* functions to create Options.
type Option func(*options)

// options holds the internal configuration for the processing pipeline.
type options struct {
	columns        string
	filters        string
	lineTerminator string
}

// WithColumns sets the comma-separated column selection. An empty string
// selects all columns in header order.
func WithColumns(columns string) Option {
	return func(o *options) { o.columns = columns }
}

// WithFilters sets the newline-separated filter definitions. Within a
// column, filters combine with OR; across columns, with AND.
func WithFilters(filters string) Option {
	return func(o *options) { o.filters = filters }
}

// WithLineTerminator sets the line terminator for the serialized output.
// Defaults to "\n".
func WithLineTerminator(terminator string) Option {
	return func(o *options) { o.lineTerminator = terminator }
}

// Result holds the outcome of a processing run.
type Result struct {
	// CSV is the serialized output, including the header line.
	CSV []byte

	// Headers are the output column names in final order.
	Headers []string

	// TotalRows is the number of data rows in the input.
	TotalRows int

	// MatchedRows is the number of rows that passed the filters.
	MatchedRows int
}

// Process runs the full pipeline on csvData: parse, select and reorder
// columns, filter rows, and serialize.
func Process(csvData string, opts ...Option) (*Result, error) {
	o := &options{lineTerminator: output.TerminatorLF}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := csvdoc.Parse(csvData)
	if err != nil {
		return nil, err
	}

	headers := header.NewSet(doc.Headers)

	selected := headers.Select(o.columns)
	if err := headers.Validate(selected); err != nil {
		return nil, err
	}

	selected = headers.Reorder(selected)

	filters, err := filter.ParseSet(o.filters)
	if err != nil {
		return nil, err
	}

	if err := filters.Validate(headers); err != nil {
		return nil, err
	}

	rows, err := engine.Apply(doc, selected, filters)
	if err != nil {
		return nil, err
	}

	serialized := output.Serialize(rows, selected, output.Options{
		LineTerminator: o.lineTerminator,
	})

	return &Result{
		CSV:         serialized,
		Headers:     selected,
		TotalRows:   len(doc.Rows),
		MatchedRows: len(rows),
	}, nil
}

// ProcessFile reads the CSV file at path and runs Process on its contents.
func ProcessFile(path string, opts ...Option) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading csv file %q: %w", path, err)
	}

	return Process(string(data), opts...)
}
