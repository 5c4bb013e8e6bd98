// Package textdiff computes and renders unified diffs between two CSV
// text documents.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Result holds the outcome of a unified diff computation.
type Result struct {
	Unified        string
	HasDifferences bool
	OldLabel       string
	NewLabel       string
}

// Options configures diff computation.
type Options struct {
	OldLabel string
	NewLabel string
	Context  int
}

// DefaultOptions returns sensible default diff options.
func DefaultOptions() Options {
	return Options{
		OldLabel: "input",
		NewLabel: "processed",
		Context:  3,
	}
}

// Compute computes a unified diff between two documents.
func Compute(oldDoc, newDoc string, opts Options) (*Result, error) {
	diff := difflib.UnifiedDiff{
		A:        splitLines(oldDoc),
		B:        splitLines(newDoc),
		FromFile: opts.OldLabel,
		ToFile:   opts.NewLabel,
		Context:  opts.Context,
	}

	unified, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("computing diff: %w", err)
	}

	return &Result{
		Unified:        unified,
		HasDifferences: unified != "",
		OldLabel:       opts.OldLabel,
		NewLabel:       opts.NewLabel,
	}, nil
}

// Write writes a formatted diff to the given writer with optional ANSI
// colors.
func Write(w io.Writer, result *Result, color bool) {
	if !result.HasDifferences {
		_, _ = fmt.Fprintln(w, "No differences found.")
		return
	}

	for _, line := range strings.Split(result.Unified, "\n") {
		if color {
			writeColorLine(w, line)
		} else {
			_, _ = fmt.Fprintln(w, line)
		}
	}
}

// writeColorLine writes a single diff line with ANSI color codes.
func writeColorLine(w io.Writer, line string) {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		cyan  = "\033[36m"
		bold  = "\033[1m"
		reset = "\033[0m"
	)

	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", bold, line, reset)
	case strings.HasPrefix(line, "@@"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", cyan, line, reset)
	case strings.HasPrefix(line, "-"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", red, line, reset)
	case strings.HasPrefix(line, "+"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", green, line, reset)
	default:
		_, _ = fmt.Fprintln(w, line)
	}
}

// splitLines splits a document into lines for diff processing. Each
// element keeps its trailing newline for difflib compatibility.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}

	return strings.SplitAfter(s, "\n")
}
