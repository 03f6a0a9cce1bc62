package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"relname/internal/config"
	"relname/internal/language"
	"relname/internal/library"
	"relname/internal/store"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Index release files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := ctx.parser(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				summary, err := library.New(cfg, st, parser, logger).Scan(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d files from %s in %s (scan %s)\n",
					summary.Files, summary.Root, summary.Duration.Round(time.Millisecond), summary.ScanID)
				return nil
			})
		},
	}
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Index release files as they appear under a directory",
		Long:  "Watch a directory tree and keep the library index current until interrupted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := ctx.parser(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return library.New(cfg, st, parser, logger).Watch(cmd.Context(), args[0])
			})
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		filter    store.Filter
		formatArg string
	)

	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "List indexed releases, or show one by path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				format, err := outputFormat(formatArg, cfg.Output.Format, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if len(args) == 1 {
					return showOne(cmd, st, args[0], format)
				}
				records, err := st.List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if format == "json" {
					return writeJSON(cmd, recordViews(records))
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No releases indexed")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRecords(records))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.Language, "language", "", "Only releases in this language (name or ISO code)")
	cmd.Flags().StringVar(&filter.Title, "title", "", "Only releases whose title contains this text")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum number of releases to list")
	cmd.Flags().StringVar(&formatArg, "format", "", "Output format: auto, table or json (default from config)")
	return cmd
}

func showOne(cmd *cobra.Command, st *store.Store, path, format string) error {
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	rec, err := st.Get(cmd.Context(), path)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s is not indexed; run `relname scan` on its directory first", path)
	}
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(cmd, recordView(*rec))
	}
	rows := [][]string{
		{"Path", rec.Path},
		{"Name", rec.Name},
		{"Title", rec.Title},
		{"Year", yearText(rec.Year)},
		{"Seasons", intsText(rec.Seasons)},
		{"Episodes", intsText(rec.Episodes)},
		{"Languages", languagesText(rec.Languages)},
		{"Parsed", rec.ParsedAt.Local().Format(time.DateTime)},
		{"Fields", string(rec.Fields)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Value"}, rows, nil))
	return nil
}

type recordJSON struct {
	Path      string         `json:"path"`
	Name      string         `json:"name"`
	Title     string         `json:"title"`
	Year      int            `json:"year,omitempty"`
	Seasons   []int          `json:"seasons,omitempty"`
	Episodes  []int          `json:"episodes,omitempty"`
	Languages []string       `json:"languages,omitempty"`
	ScanID    string         `json:"scan_id,omitempty"`
	ParsedAt  time.Time      `json:"parsed_at"`
	Fields    map[string]any `json:"fields"`
}

func recordView(rec store.Record) recordJSON {
	view := recordJSON{
		Path:      rec.Path,
		Name:      rec.Name,
		Title:     rec.Title,
		Year:      rec.Year,
		Seasons:   rec.Seasons,
		Episodes:  rec.Episodes,
		Languages: rec.Languages,
		ScanID:    rec.ScanID,
		ParsedAt:  rec.ParsedAt,
	}
	view.Fields = decodeFields(rec.Fields)
	return view
}

func recordViews(records []store.Record) []recordJSON {
	views := make([]recordJSON, len(records))
	for i, rec := range records {
		views[i] = recordView(rec)
	}
	return views
}

func renderRecords(records []store.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Title,
			yearText(rec.Year),
			intsText(rec.Seasons),
			intsText(rec.Episodes),
			languagesText(rec.Languages),
			rec.Path,
		})
	}
	return renderTable(
		[]string{"Title", "Year", "Seasons", "Episodes", "Languages", "Path"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func yearText(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// intsText collapses consecutive runs: [1 2 3 5] -> "1-3, 5".
func intsText(values []int) string {
	var parts []string
	for i := 0; i < len(values); {
		j := i
		for j+1 < len(values) && values[j+1] == values[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, fmt.Sprintf("%d-%d", values[i], values[j]))
		} else {
			parts = append(parts, strconv.Itoa(values[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

func languagesText(codes []string) string {
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = language.DisplayName(code)
	}
	return strings.Join(names, ", ")
}
