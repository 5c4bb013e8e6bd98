package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GuilhermeCAz/csvslice/internal/csvdoc"
	"github.com/GuilhermeCAz/csvslice/internal/filter"
	"github.com/GuilhermeCAz/csvslice/internal/header"
)

type validateOptions struct {
	columns     string
	filters     string
	filtersFile string
}

func newValidateCommand() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate column selections and filters against a CSV file",
		Long: `Validate that the requested columns exist in the CSV header row and
that all filter expressions are well-formed and reference known columns.

No output is produced. Returns exit code 7 on validation failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.columns, "columns", "c", "", "comma-separated columns to select (default: all)")
	f.StringVarP(&opts.filters, "filters", "F", "", "newline-separated row filter expressions")
	f.StringVar(&opts.filtersFile, "filters-file", "", "file containing row filter expressions, one per line")

	return cmd
}

func runValidate(cmd *cobra.Command, filePath string, opts *validateOptions) error {
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

	doc, err := csvdoc.Parse(string(data))
	if err != nil {
		return &ExitError{Code: 7, Err: err}
	}

	headers := header.NewSet(doc.Headers)

	selected := headers.Select(opts.columns)
	if err := headers.Validate(selected); err != nil {
		return &ExitError{Code: 7, Err: err}
	}

	set, err := filter.ParseSet(filters)
	if err != nil {
		return &ExitError{Code: 7, Err: err}
	}

	if err := set.Validate(headers); err != nil {
		return &ExitError{Code: 7, Err: err}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed.")

	return nil
}
