package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/GuilhermeCAz/csvslice/internal/logging"
	"github.com/GuilhermeCAz/csvslice/internal/output"
	"github.com/GuilhermeCAz/csvslice/internal/watch"
	"github.com/GuilhermeCAz/csvslice/pkg/csvslice"
)

type watchOptions struct {
	processOptions

	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a CSV file and re-process on changes",
		Long: `Watch monitors a CSV file (and the filters file, if given) for changes
and automatically re-runs processing when the file is modified.

File changes are debounced to avoid rapid re-runs. Each run reports the
number of rows read and written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, args[0], opts)
		},
	}

	addProcessFlags(cmd, &opts.processOptions)

	cmd.Flags().DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "debounce interval for file changes")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, filePath string, opts *watchOptions) error {
	if opts.output == "" {
		return &ExitError{Code: 2, Err: fmt.Errorf("--output (-o) is required for watch mode")}
	}

	logger := logging.FromContext(ctx)

	filters, err := resolveFilters(&opts.processOptions)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	terminator, err := resolveLineEnding(opts.lineEnding)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	runFn := func(context.Context) (*watch.RunResult, error) {
		result, runErr := csvslice.ProcessFile(filePath,
			csvslice.WithColumns(opts.columns),
			csvslice.WithFilters(filters),
			csvslice.WithLineTerminator(terminator),
		)
		if runErr != nil {
			return nil, runErr
		}

		if !opts.dryRun {
			w := output.NewFileWriter(opts.output, output.WithLogger(logger))
			if writeErr := w.Write(result.CSV); writeErr != nil {
				return nil, fmt.Errorf("writing output: %w", writeErr)
			}
		}

		return &watch.RunResult{
			TotalRows:   result.TotalRows,
			MatchedRows: result.MatchedRows,
			OutputPath:  opts.output,
		}, nil
	}

	var extraFiles []string
	if opts.filtersFile != "" {
		extraFiles = append(extraFiles, opts.filtersFile)
	}

	watchOpts := watch.Options{
		Path:       filePath,
		ExtraFiles: extraFiles,
		Debounce:   opts.debounce,
		Logger:     logger,
		Out:        cmd.ErrOrStderr(),
	}

	return watch.Run(ctx, watchOpts, runFn)
}
