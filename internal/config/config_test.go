package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", DefaultPath))
	if err == nil {
		t.Fatalf("explicit missing config file must be an error")
	}

	// Probing the default path must not be an error.
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(t.TempDir())

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Delimiters != " " {
		t.Fatalf("default delimiters wrong. expected=%q, got=%q", " ", cfg.Delimiters)
	}
	if cfg.Logging.SlogLevel() != slog.LevelWarn {
		t.Fatalf("default level wrong. expected=warn, got=%v", cfg.Logging.SlogLevel())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sps.toml")
	content := `
delimiters = " ;"

[logging]
level = "debug"
seq_url = "http://localhost:5341"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Delimiters != " ;" {
		t.Fatalf("delimiters wrong. expected=%q, got=%q", " ;", cfg.Delimiters)
	}
	if cfg.Logging.SeqURL != "http://localhost:5341" {
		t.Fatalf("seq_url wrong. got=%q", cfg.Logging.SeqURL)
	}
	if cfg.Logging.SlogLevel() != slog.LevelDebug {
		t.Fatalf("level wrong. expected=debug, got=%v", cfg.Logging.SlogLevel())
	}
}
