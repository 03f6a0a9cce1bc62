package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"relname/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("RELNAME_STATE_DIR", "")
	t.Setenv("RELNAME_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "relname", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "relname"); cfg.Paths.StateDir != want {
		t.Fatalf("state dir = %q, want %q", cfg.Paths.StateDir, want)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Paths.StateDir, "library.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
	if !cfg.Parse.Standardise || cfg.Parse.CoherentTypes {
		t.Fatalf("unexpected parse defaults: %+v", cfg.Parse)
	}
	if cfg.Output.Format != "auto" {
		t.Fatalf("output format = %q, want auto", cfg.Output.Format)
	}
	if cfg.Library.Workers != 4 {
		t.Fatalf("workers = %d, want 4", cfg.Library.Workers)
	}
}

func TestLoadCustomConfigNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("RELNAME_STATE_DIR", "")
	t.Setenv("RELNAME_LOG_LEVEL", "")

	configPath := filepath.Join(t.TempDir(), "relname.toml")
	content := `
[parse]
standardise = false
coherent_types = true

[output]
format = " JSON "

[paths]
state_dir = "~/state"

[library]
extensions = [".MKV", "mkv", " mp4 ", ""]
workers = 0

[logging]
level = "DEBUG"

[[exceptions]]
title = " Law and Order SVU "
field = "title"
value = "Law and Order SVU"
corrected = "Law & Order: Special Victims Unit"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Parse.Standardise || !cfg.Parse.CoherentTypes {
		t.Fatalf("unexpected parse section: %+v", cfg.Parse)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("output format = %q, want json", cfg.Output.Format)
	}
	if cfg.Paths.StateDir != filepath.Join(tempHome, "state") {
		t.Fatalf("state dir = %q", cfg.Paths.StateDir)
	}
	if got := strings.Join(cfg.Library.Extensions, ","); got != "mkv,mp4" {
		t.Fatalf("extensions = %q, want mkv,mp4", got)
	}
	if cfg.Library.Workers != 4 {
		t.Fatalf("workers = %d, want default 4", cfg.Library.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Exceptions) != 1 || cfg.Exceptions[0].Title != "Law and Order SVU" {
		t.Fatalf("unexpected exceptions %+v", cfg.Exceptions)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stateDir := t.TempDir()
	t.Setenv("RELNAME_STATE_DIR", stateDir)
	t.Setenv("RELNAME_LOG_LEVEL", "warn")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.StateDir != stateDir {
		t.Fatalf("state dir = %q, want %q", cfg.Paths.StateDir, stateDir)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q, want warn", cfg.Logging.Level)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"output format", func(c *config.Config) { c.Output.Format = "xml" }, "output.format"},
		{"workers", func(c *config.Config) { c.Library.Workers = 100 }, "library.workers"},
		{"extensions", func(c *config.Config) { c.Library.Extensions = nil }, "library.extensions"},
		{"log format", func(c *config.Config) { c.Logging.Format = "pretty" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"exception title", func(c *config.Config) {
			c.Exceptions = []config.Exception{{Field: "title", Corrected: "X"}}
		}, "exceptions[0].title"},
		{"exception corrected", func(c *config.Config) {
			c.Exceptions = []config.Exception{{Title: "X", Field: "title"}}
		}, "exceptions[0].corrected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "relname.toml")
	if err := os.WriteFile(configPath, []byte("[parse]\nstandardize = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RELNAME_STATE_DIR", "")
	t.Setenv("RELNAME_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if decoded.Output.Format != "auto" {
		t.Fatalf("sample output format = %q", decoded.Output.Format)
	}

	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("Load(sample) returned error: %v", err)
	}
}

func TestHasExtension(t *testing.T) {
	cfg := config.Default()
	cases := map[string]bool{
		"Show.S01E01.mkv": true,
		"movie.MP4":       true,
		"notes.txt":       false,
		"noext":           false,
	}
	for name, want := range cases {
		if got := cfg.HasExtension(name); got != want {
			t.Errorf("HasExtension(%q) = %v, want %v", name, got, want)
		}
	}
}
