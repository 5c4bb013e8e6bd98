// Package output serializes filtered CSV documents and writes them to
// their destinations.
package output

import (
	"strings"

	"github.com/GuilhermeCAz/csvslice/internal/csvdoc"
)

// Line terminators accepted by the serializer.
const (
	TerminatorLF   = "\n"
	TerminatorCRLF = "\r\n"
)

// Options configures the fixed-format CSV serializer.
type Options struct {
	// LineTerminator ends every output line (default: "\n"). The
	// terminator is an explicit parameter so output encoding never
	// depends on process-global state.
	LineTerminator string
}

// DefaultOptions returns the serializer defaults.
func DefaultOptions() Options {
	return Options{
		LineTerminator: TerminatorLF,
	}
}

// Serialize renders one header line followed by one line per row, each
// cell in headers order. Cells are written verbatim with no quoting or
// escaping: fields containing the delimiter or a newline are emitted
// as-is. The output always ends with the line terminator.
func Serialize(rows []csvdoc.Row, headers []string, opts Options) []byte {
	if opts.LineTerminator == "" {
		opts.LineTerminator = TerminatorLF
	}

	var b strings.Builder

	b.WriteString(strings.Join(headers, ","))
	b.WriteString(opts.LineTerminator)

	for _, row := range rows {
		for i, name := range headers {
			if i > 0 {
				b.WriteByte(',')
			}

			// A missing cell serializes as empty; engine-projected rows
			// are always complete.
			b.WriteString(row[name])
		}

		b.WriteString(opts.LineTerminator)
	}

	return []byte(b.String())
}
