package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relname/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	stateDir   string
	mediaDir   string
}

func setupCLITestEnv(t *testing.T, extra string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("RELNAME_STATE_DIR", "")
	t.Setenv("RELNAME_LOG_LEVEL", "")

	env := &cliTestEnv{
		configPath: filepath.Join(base, "relname.toml"),
		stateDir:   filepath.Join(base, "state"),
		mediaDir:   filepath.Join(base, "media"),
	}
	content := fmt.Sprintf("[paths]\nstate_dir = %q\n\n[logging]\nlevel = \"warn\"\n%s", env.stateDir, extra)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestParseJSONSingleName(t *testing.T) {
	env := setupCLITestEnv(t, "")
	out, _, err := runCLI(t, []string{"parse", "--format", "json", "The.Matrix.1999.1080p.BluRay.x264-GROUP"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if fields["title"] != "The Matrix" || fields["year"] != float64(1999) || fields["codec"] != "H.264" {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestParseRawAndCoherentFlags(t *testing.T) {
	env := setupCLITestEnv(t, "")
	out, _, err := runCLI(t, []string{"parse", "--format", "json", "--raw", "--coherent", "The.Matrix.1999.1080p.BluRay.x264-GROUP"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	codec, ok := fields["codec"].([]any)
	if !ok || len(codec) != 1 || codec[0] != "x264" {
		t.Fatalf("codec = %#v, want [\"x264\"]", fields["codec"])
	}
	if _, ok := fields["title"].(string); !ok {
		t.Fatalf("title should stay a string, got %#v", fields["title"])
	}
}

func TestParseReadsStdin(t *testing.T) {
	env := setupCLITestEnv(t, "")
	stdin := "The.Matrix.1999.1080p\n\nFriends.S01E02.720p.HDTV.x264-GROUP\n"
	out, _, err := runCLI(t, []string{"parse", "--format", "json"}, env.configPath, stdin)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var results []struct {
		Name   string         `json:"name"`
		Fields map[string]any `json:"fields"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(results) != 2 || results[1].Fields["title"] != "Friends" {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestParseTableOutput(t *testing.T) {
	env := setupCLITestEnv(t, "")
	out, _, err := runCLI(t, []string{"parse", "--format", "table", "--spans", "5x09"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// go-pretty upper-cases headers.
	requireContains(t, out, "FIELD")
	requireContains(t, out, "SPAN")
	requireContains(t, out, "seasons")
}

func TestParseAutoFormatIsJSONWhenPiped(t *testing.T) {
	env := setupCLITestEnv(t, "")
	out, _, err := runCLI(t, []string{"parse", "The.Matrix.1999"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Fatalf("expected JSON on a non-terminal writer, got %q", out)
	}
}

func TestParseAppliesConfiguredExceptions(t *testing.T) {
	env := setupCLITestEnv(t, `
[[exceptions]]
title = "Law and Order SVU"
field = "title"
value = "Law and Order SVU"
corrected = "Law & Order: Special Victims Unit"
`)
	out, _, err := runCLI(t, []string{"parse", "--format", "json", "Law.and.Order.SVU.S01E01.720p.HDTV"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, `"title": "Law & Order: Special Victims Unit"`)
}

func TestParseRequiresNames(t *testing.T) {
	env := setupCLITestEnv(t, "")
	if _, _, err := runCLI(t, []string{"parse"}, env.configPath, ""); err == nil {
		t.Fatal("expected error without names")
	}
}

func TestScanShowFind(t *testing.T) {
	env := setupCLITestEnv(t, "")
	testsupport.WriteTree(t, env.mediaDir,
		"Amelie.2001.FRENCH.1080p.BluRay.x264-GROUP.mkv",
		"The.Matrix.1999.1080p.BluRay.x264-GROUP.mkv",
		"The.Matrix.Reloaded.2003.1080p.BluRay.x264-GROUP.mkv",
		"readme.txt",
	)

	out, _, err := runCLI(t, []string{"scan", env.mediaDir}, env.configPath, "")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Indexed 3 files")

	out, _, err = runCLI(t, []string{"show", "--format", "json", "--language", "fr"}, env.configPath, "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var listed []map[string]any
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(listed) != 1 || listed[0]["title"] != "Amelie" {
		t.Fatalf("unexpected listing %v", listed)
	}

	out, _, err = runCLI(t, []string{"show", "--format", "table"}, env.configPath, "")
	if err != nil {
		t.Fatalf("show table: %v", err)
	}
	requireContains(t, out, "The Matrix Reloaded")
	requireContains(t, out, "French")

	path := filepath.Join(env.mediaDir, "The.Matrix.1999.1080p.BluRay.x264-GROUP.mkv")
	out, _, err = runCLI(t, []string{"show", "--format", "json", path}, env.configPath, "")
	if err != nil {
		t.Fatalf("show path: %v", err)
	}
	requireContains(t, out, `"year": 1999`)

	out, _, err = runCLI(t, []string{"find", "--format", "json", "matrix"}, env.configPath, "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	var matches []struct {
		Title string  `json:"title"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(matches) != 2 || matches[0].Title != "The Matrix" {
		t.Fatalf("unexpected matches %+v", matches)
	}
}

func TestShowUnknownPath(t *testing.T) {
	env := setupCLITestEnv(t, "")
	_, _, err := runCLI(t, []string{"show", "/nowhere/file.mkv"}, env.configPath, "")
	if err == nil || !strings.Contains(err.Error(), "not indexed") {
		t.Fatalf("expected not indexed error, got %v", err)
	}
}

func TestIntsText(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, ""},
		{[]int{1}, "1"},
		{[]int{1, 2, 3}, "1-3"},
		{[]int{1, 2, 3, 5, 7, 8}, "1-3, 5, 7-8"},
	}
	for _, tt := range tests {
		if got := intsText(tt.in); got != tt.want {
			t.Errorf("intsText(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigInitValidateAndPath(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, filepath.Join(env.stateDir, "library.db"))

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, _, err = runCLI(t, []string{"config", "path"}, "", "")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, filepath.Join(".config", "relname", "config.toml"))
}

func TestInvalidConfigFails(t *testing.T) {
	env := setupCLITestEnv(t, "\n[output]\nformat = \"xml\"\n")
	_, _, err := runCLI(t, []string{"parse", "x"}, env.configPath, "")
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected output.format error, got %v", err)
	}
}
