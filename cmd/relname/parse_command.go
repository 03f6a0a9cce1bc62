package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"relname/internal/release"
)

type namedResult struct {
	Name   string          `json:"name"`
	Fields *release.Result `json:"fields"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var (
		raw       bool
		coherent  bool
		spans     bool
		formatArg string
	)

	cmd := &cobra.Command{
		Use:   "parse [name...]",
		Short: "Parse release names from arguments or stdin",
		Long: "Parse release names into structured fields.\n\n" +
			"Names come from the arguments, or one per line on stdin when none are given.",
		Example: "  relname parse 'The.Matrix.1999.1080p.BluRay.x264-GROUP'\n" +
			"  ls /media/movies | relname parse --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				var err error
				if names, err = readNames(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if len(names) == 0 {
				return errors.New("no release names given")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format, err := outputFormat(formatArg, cfg.Output.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			parser, err := ctx.parser(cmd)
			if err != nil {
				return err
			}

			opts := ctx.parseOptions()
			if raw {
				opts.Standardise = false
			}
			if coherent {
				opts.CoherentTypes = true
			}

			results := make([]namedResult, len(names))
			for i, name := range names {
				results[i] = namedResult{Name: name, Fields: parser.Parse(name, opts)}
			}

			if format == "json" {
				if len(results) == 1 {
					return writeJSON(cmd, results[0].Fields)
				}
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if len(results) > 1 {
					fmt.Fprintln(out, r.Name)
				}
				fmt.Fprintln(out, renderResult(r.Fields, spans))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Report matched text without standardising it")
	cmd.Flags().BoolVar(&coherent, "coherent", false, "Report every field except title and episodeName as a list")
	cmd.Flags().BoolVar(&spans, "spans", false, "Show the matched character range of each field (table output)")
	cmd.Flags().StringVar(&formatArg, "format", "", "Output format: auto, table or json (default from config)")
	return cmd
}

func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return names, nil
}

func renderResult(res *release.Result, withSpans bool) string {
	headers := []string{"Field", "Value"}
	if withSpans {
		headers = append(headers, "Span")
	}
	rows := make([][]string, 0, res.Len())
	for _, key := range res.Keys() {
		v, _ := res.Get(key)
		row := []string{key, v.Text()}
		if withSpans {
			if span, ok := res.Span(key); ok {
				row = append(row, fmt.Sprintf("%d-%d", span.Start, span.End))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return "(no fields)"
	}
	return renderTable(headers, rows, nil)
}
