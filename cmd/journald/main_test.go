package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(flag.NewFlagSet("journald", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg != defaultConfig() {
		t.Fatalf("got=%+v, want defaults %+v", cfg, defaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestParseFlagsOverride(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(flag.NewFlagSet("journald", flag.ContinueOnError),
		[]string{"-addr", "127.0.0.1:9000", "-db", "/tmp/test.db"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr got=%v, want 127.0.0.1:9000", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("db got=%v, want /tmp/test.db", cfg.DBPath)
	}
	if cfg.MemoryPath != defaultConfig().MemoryPath {
		t.Fatalf("memory got=%v, want default", cfg.MemoryPath)
	}
}

func TestParseFlagsConfigFileAndPrecedence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journald.yaml")
	content := "addr: 0.0.0.0:7000\ndb_path: /data/journal.db\nmodel: gpt-4o\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// File fills in what flags don't set; explicit flags win.
	cfg, err := parseFlags(flag.NewFlagSet("journald", flag.ContinueOnError),
		[]string{"-config", path, "-addr", "127.0.0.1:9000"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr got=%v, want flag value", cfg.Addr)
	}
	if cfg.DBPath != "/data/journal.db" {
		t.Fatalf("db got=%v, want file value", cfg.DBPath)
	}
	if cfg.Model != "gpt-4o" {
		t.Fatalf("model got=%v, want file value", cfg.Model)
	}
	if cfg.MemoryPath != defaultConfig().MemoryPath {
		t.Fatalf("memory got=%v, want default", cfg.MemoryPath)
	}
}

func TestParseFlagsMissingConfigFile(t *testing.T) {
	t.Parallel()

	_, err := parseFlags(flag.NewFlagSet("journald", flag.ContinueOnError),
		[]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing addr", func(c *Config) { c.Addr = "" }, true},
		{"missing db", func(c *Config) { c.DBPath = "" }, true},
		{"missing memory path", func(c *Config) { c.MemoryPath = "" }, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
