package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todomatic/internal/task"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestDefaultConfigDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	if got := DefaultConfigDir(); got != filepath.Join("/home/tester", ".config", AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.DefaultFilter != task.All {
		t.Errorf("expected All filter, got %v", cfg.DefaultFilter)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info level, got %q", cfg.LogLevel)
	}
	if cfg.SeedPath != "" {
		t.Errorf("expected no seed, got %q", cfg.SeedPath)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_filter = "active"
seed = "tasks.json"
log_level = "DEBUG"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultFilter != task.Active {
		t.Errorf("expected Active filter, got %v", cfg.DefaultFilter)
	}
	if cfg.SeedPath != filepath.Join(dir, "tasks.json") {
		t.Errorf("expected seed relative to config dir, got %q", cfg.SeedPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug level, got %q", cfg.LogLevel)
	}
}

func TestLoad_AbsoluteSeed(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(t.TempDir(), "seed.json")
	writeConfig(t, dir, "seed = \""+filepath.ToSlash(seed)+"\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Clean(cfg.SeedPath) != filepath.Clean(seed) {
		t.Errorf("expected %q, got %q", seed, cfg.SeedPath)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad syntax", "default_filter = ", "parse config file"},
		{"unknown key", "colour = \"red\"\n", "unknown keys: colour"},
		{"bad filter", "default_filter = \"done\"\n", "unknown filter: done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}
