package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputFormat resolves --format against the configured default. auto picks a
// table for terminals and JSON for pipes and files.
func outputFormat(flag, configured string, w io.Writer) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = configured
	}
	switch format {
	case "table", "json":
		return format, nil
	case "auto", "":
		if isTerminal(w) {
			return "table", nil
		}
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported format %q (want auto, table or json)", flag)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func decodeFields(raw []byte) map[string]any {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}
