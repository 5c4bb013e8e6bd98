package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GuilhermeCAz/csvslice/internal/output"
	"github.com/GuilhermeCAz/csvslice/internal/textdiff"
	"github.com/GuilhermeCAz/csvslice/pkg/csvslice"
)

type diffOptions struct {
	columns     string
	filters     string
	filtersFile string
	noColor     bool
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Show what processing would change",
		Long: `Diff compares the input CSV file against the processed output to show
which columns and rows the given selection and filters would remove.

The baseline is the input normalized through the same serializer, so the
diff reflects only the effect of the selection and filters.

Exit codes:
  0  No differences
  1  Error
  2  Invalid arguments
  8  Differences found`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.columns, "columns", "c", "", "comma-separated columns to select (default: all)")
	f.StringVarP(&opts.filters, "filters", "F", "", "newline-separated row filter expressions")
	f.StringVar(&opts.filtersFile, "filters-file", "", "file containing row filter expressions, one per line")
	f.BoolVar(&opts.noColor, "no-color", false, "disable ANSI color output")

	return cmd
}

func runDiff(cmd *cobra.Command, filePath string, opts *diffOptions) error {
	filters, err := resolveFilters(&processOptions{
		filters:     opts.filters,
		filtersFile: opts.filtersFile,
	})
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading csv file %q: %w", filePath, err)}
	}

	// Baseline: input passed through the pipeline with no selection or
	// filters, so formatting differences don't show up in the diff.
	baseline, err := csvslice.Process(string(data))
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	processed, err := csvslice.Process(string(data),
		csvslice.WithColumns(opts.columns),
		csvslice.WithFilters(filters),
		csvslice.WithLineTerminator(output.TerminatorLF),
	)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	diffOpts := textdiff.DefaultOptions()
	diffOpts.OldLabel = filePath
	diffOpts.NewLabel = "processed"

	result, err := textdiff.Compute(string(baseline.CSV), string(processed.CSV), diffOpts)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("computing diff: %w", err)}
	}

	textdiff.Write(cmd.OutOrStdout(), result, !opts.noColor)

	if result.HasDifferences {
		return &ExitError{
			Code: 8,
			Err: fmt.Errorf("differences found: %d of %d rows match",
				processed.MatchedRows, processed.TotalRows),
		}
	}

	return nil
}
