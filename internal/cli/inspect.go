package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GuilhermeCAz/csvslice/internal/csvdoc"
	"github.com/GuilhermeCAz/csvslice/internal/header"
)

type inspectOptions struct {
	format string
}

func newInspectCommand() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Inspect the structure of a CSV file",
		Long: `Inspect a CSV file to preview its columns before processing.

Displays each column's name, position, number of distinct values, and
number of empty cells, along with the total row count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table, json, yaml")

	return cmd
}

// inspectResult is the structured output of the inspect command.
type inspectResult struct {
	File     string       `json:"file" yaml:"file"`
	RowCount int          `json:"rowCount" yaml:"rowCount"`
	Columns  []columnInfo `json:"columns" yaml:"columns"`
}

type columnInfo struct {
	Name     string `json:"name" yaml:"name"`
	Position int    `json:"position" yaml:"position"`
	Distinct int    `json:"distinct" yaml:"distinct"`
	Empty    int    `json:"empty" yaml:"empty"`
}

func runInspect(cmd *cobra.Command, filePath string, opts *inspectOptions) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading csv file %q: %w", filePath, err)}
	}

	doc, err := csvdoc.Parse(string(data))
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	result := buildInspectResult(filePath, doc)

	w := cmd.OutOrStdout()

	switch opts.format {
	case "json":
		return renderJSON(w, result)
	case "yaml":
		return renderYAML(w, result)
	case "table":
		renderTable(w, result)
		return nil
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("unknown format %q: expected table, json, yaml", opts.format)}
	}
}

func buildInspectResult(filePath string, doc *csvdoc.Document) inspectResult {
	headers := header.NewSet(doc.Headers)

	result := inspectResult{
		File:     filePath,
		RowCount: len(doc.Rows),
	}

	for i, name := range headers.Names() {
		distinct := make(map[string]struct{})
		empty := 0

		for _, row := range doc.Rows {
			value, ok := row[name]
			if !ok || value == "" {
				empty++
				continue
			}

			distinct[value] = struct{}{}
		}

		result.Columns = append(result.Columns, columnInfo{
			Name:     name,
			Position: i,
			Distinct: len(distinct),
			Empty:    empty,
		})
	}

	return result
}

func renderJSON(w io.Writer, result inspectResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

func renderYAML(w io.Writer, result inspectResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	defer func() { _ = enc.Close() }()

	return enc.Encode(result)
}

func renderTable(w io.Writer, result inspectResult) {
	_, _ = fmt.Fprintf(w, "\n=== File: %s ===\n", result.File)
	_, _ = fmt.Fprintf(w, "Rows: %d\n", result.RowCount)

	_, _ = fmt.Fprintf(w, "\n--- Columns (%d) ---\n", len(result.Columns))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "POSITION\tNAME\tDISTINCT\tEMPTY")

	for _, c := range result.Columns {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", c.Position, c.Name, c.Distinct, c.Empty)
	}

	_ = tw.Flush()
}
