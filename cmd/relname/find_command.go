package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"relname/internal/config"
	"relname/internal/store"
	"relname/internal/textutil"
)

func newFindCommand(ctx *commandContext) *cobra.Command {
	var (
		limit     int
		formatArg string
	)

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Search indexed titles by similarity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				format, err := outputFormat(formatArg, cfg.Output.Format, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				titles, err := st.Titles(cmd.Context())
				if err != nil {
					return err
				}
				matches := textutil.Rank(query, titles, limit)

				if format == "json" {
					type matchJSON struct {
						Title string  `json:"title"`
						Score float64 `json:"score"`
					}
					out := make([]matchJSON, len(matches))
					for i, m := range matches {
						out[i] = matchJSON{Title: m.Text, Score: m.Score}
					}
					return writeJSON(cmd, out)
				}
				if len(matches) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No titles match %q\n", query)
					return nil
				}
				rows := make([][]string, len(matches))
				for i, m := range matches {
					rows[i] = []string{m.Text, fmt.Sprintf("%.2f", m.Score)}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Title", "Score"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of titles to show")
	cmd.Flags().StringVar(&formatArg, "format", "", "Output format: auto, table or json (default from config)")
	return cmd
}
