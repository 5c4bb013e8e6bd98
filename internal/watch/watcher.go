// Package watch re-runs CSV processing whenever the watched input
// files change.
package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc is called each time the watcher triggers a re-run. It
// receives the context and returns the run result for status reporting.
type RunFunc func(ctx context.Context) (*RunResult, error)

// RunResult holds the output of a single processing run.
type RunResult struct {
	TotalRows   int
	MatchedRows int
	OutputPath  string
}

// Options configures the watch behaviour.
type Options struct {
	// Path is the CSV file to watch.
	Path string

	// ExtraFiles are additional files to watch (e.g. a filters file).
	ExtraFiles []string

	// Debounce is the quiet period before triggering a re-run.
	Debounce time.Duration

	// Logger is used for structured logging.
	Logger *slog.Logger

	// Out is the writer for user-facing status messages.
	Out io.Writer
}

// DefaultOptions returns sensible default watch options.
func DefaultOptions() Options {
	return Options{
		Debounce: 500 * time.Millisecond,
		Logger:   slog.Default(),
		Out:      os.Stderr,
	}
}

// Run starts the file watcher and blocks until the context is
// cancelled or a SIGINT/SIGTERM signal is received. The parent
// directories of the watched files are registered with the watcher so
// that editor rename-and-replace saves are observed.
func Run(ctx context.Context, opts Options, runFn RunFunc) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Out == nil {
		opts.Out = io.Discard
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]struct{})
	dirs := make(map[string]struct{})

	for _, f := range append([]string{opts.Path}, opts.ExtraFiles...) {
		abs, absErr := filepath.Abs(f)
		if absErr != nil {
			return fmt.Errorf("resolving path %q: %w", f, absErr)
		}

		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %q: %w", dir, err)
		}
	}

	// Trap SIGINT / SIGTERM for graceful shutdown.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(opts.Out, "watching %s (debounce=%s)\n", opts.Path, opts.Debounce)

	// Initial run.
	doRun(sigCtx, opts, runFn, "(initial)")

	debouncer := NewDebouncer(opts.Debounce, func(path string) {
		doRun(sigCtx, opts, runFn, path)
	})
	defer debouncer.Stop()

	for {
		select {
		case <-sigCtx.Done():
			fmt.Fprintln(opts.Out, "\nshutting down watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevant(event, watched) {
				continue
			}

			debouncer.Trigger(event.Name)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			opts.Logger.Error("watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// doRun executes a single processing run and prints the status line.
func doRun(ctx context.Context, opts Options, runFn RunFunc, trigger string) {
	now := time.Now().Format("15:04:05")

	result, err := runFn(ctx)
	if err != nil {
		fmt.Fprintf(opts.Out, "[%s] %s → ERROR: %v\n", now, trigger, err)
		return
	}

	fmt.Fprintf(opts.Out, "[%s] %s → OK (%d of %d rows written to %s)\n",
		now, trigger, result.MatchedRows, result.TotalRows, result.OutputPath)
}

// isRelevant filters events down to writes on the watched files.
func isRelevant(event fsnotify.Event, watched map[string]struct{}) bool {
	if event.Op == 0 {
		return false
	}

	// Only care about write, create, remove, rename.
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	// Ignore editor temporary files and hidden files.
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp") || strings.HasPrefix(name, "#") {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	_, ok := watched[abs]

	return ok
}
