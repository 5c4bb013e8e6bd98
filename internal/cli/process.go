package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GuilhermeCAz/csvslice/internal/logging"
	"github.com/GuilhermeCAz/csvslice/internal/output"
	"github.com/GuilhermeCAz/csvslice/pkg/csvslice"
)

type processOptions struct {
	// Selection and filtering.
	columns     string
	filters     string
	filtersFile string

	// Output.
	output     string
	lineEnding string
	dryRun     bool
}

func newProcessCommand() *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Select columns and filter rows of a CSV file",
		Long: `Process a CSV file: select and reorder the requested columns, keep only
the rows matching the filter expressions, and write the result as CSV.

Filters are newline-separated expressions of the form <column><op><value>,
where <op> is one of !=, >=, <=, =, >, <. Within a column, multiple
filters combine with OR; across columns, with AND.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args[0], opts)
		},
	}

	addProcessFlags(cmd, opts)

	return cmd
}

// addProcessFlags registers the shared selection/filtering/output flags.
// The watch command reuses the same set.
func addProcessFlags(cmd *cobra.Command, opts *processOptions) {
	f := cmd.Flags()

	f.StringVarP(&opts.columns, "columns", "c", "", "comma-separated columns to select (default: all)")
	f.StringVarP(&opts.filters, "filters", "F", "", "newline-separated row filter expressions")
	f.StringVar(&opts.filtersFile, "filters-file", "", "file containing row filter expressions, one per line")
	f.StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")
	f.StringVar(&opts.lineEnding, "line-ending", "lf", "output line ending: lf, crlf")
	f.BoolVar(&opts.dryRun, "dry-run", false, "preview output without writing files")
}

func runProcess(cmd *cobra.Command, filePath string, opts *processOptions) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	filters, err := resolveFilters(opts)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	terminator, err := resolveLineEnding(opts.lineEnding)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	result, err := csvslice.ProcessFile(filePath,
		csvslice.WithColumns(opts.columns),
		csvslice.WithFilters(filters),
		csvslice.WithLineTerminator(terminator),
	)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	logger.Info("processing complete",
		slog.Int("total_rows", result.TotalRows),
		slog.Int("matched_rows", result.MatchedRows),
		slog.Int("columns", len(result.Headers)),
	)

	if opts.dryRun {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "# Dry-run mode — output preview:")
	}

	if opts.output != "" && !opts.dryRun {
		w := output.NewFileWriter(opts.output, output.WithLogger(logger))
		if err := w.Write(result.CSV); err != nil {
			return &ExitError{Code: 6, Err: fmt.Errorf("writing output: %w", err)}
		}

		logger.Info("output written", slog.String("path", opts.output))
	} else {
		if _, err := cmd.OutOrStdout().Write(result.CSV); err != nil {
			return &ExitError{Code: 6, Err: fmt.Errorf("writing output: %w", err)}
		}
	}

	printProcessSummary(cmd.ErrOrStderr(), result)

	return nil
}

// resolveFilters merges the --filters flag with the contents of
// --filters-file, flag expressions first.
func resolveFilters(opts *processOptions) (string, error) {
	parts := make([]string, 0, 2)

	if opts.filters != "" {
		parts = append(parts, opts.filters)
	}

	if opts.filtersFile != "" {
		data, err := os.ReadFile(opts.filtersFile)
		if err != nil {
			return "", fmt.Errorf("reading filters file %q: %w", opts.filtersFile, err)
		}

		parts = append(parts, string(data))
	}

	return strings.Join(parts, "\n"), nil
}

// resolveLineEnding maps the --line-ending flag value to a terminator.
func resolveLineEnding(name string) (string, error) {
	switch name {
	case "lf":
		return output.TerminatorLF, nil
	case "crlf":
		return output.TerminatorCRLF, nil
	default:
		return "", fmt.Errorf("invalid line ending %q: must be one of lf, crlf", name)
	}
}

// printProcessSummary prints a human-readable summary to stderr.
func printProcessSummary(w io.Writer, result *csvslice.Result) {
	_, _ = fmt.Fprintf(w, "\n--- Processing Summary ---\n")
	_, _ = fmt.Fprintf(w, "Columns:      %d\n", len(result.Headers))
	_, _ = fmt.Fprintf(w, "Rows read:    %d\n", result.TotalRows)
	_, _ = fmt.Fprintf(w, "Rows written: %d\n", result.MatchedRows)
	_, _ = fmt.Fprintf(w, "--------------------------\n")
}
