package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/thelanternworks/inklight/analysis"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"db source", func(c *Config) { c.DBPath = "j.db" }, false},
		{"entries source", func(c *Config) { c.EntriesPath = "e.json" }, false},
		{"no source", func(*Config) {}, true},
		{"both sources", func(c *Config) { c.DBPath = "j.db"; c.EntriesPath = "e.json" }, true},
		{"no memory path", func(c *Config) { c.DBPath = "j.db"; c.MemoryPath = "" }, true},
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

func TestLoadEntriesFromJSONFile(t *testing.T) {
	t.Parallel()

	entries := []analysis.Entry{
		{ID: "1", CreatedAt: "2026-03-10T09:00:00Z", Text: "Went for a walk after work and felt better."},
		{ID: "2", CreatedAt: "2026-03-09T09:00:00Z", Text: "I really enjoy baking bread on sundays."},
	}
	path := filepath.Join(t.TempDir(), "entries.json")
	b, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := loadEntries(Config{EntriesPath: path})
	if err != nil {
		t.Fatalf("loadEntries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len got=%d, want 2", len(got))
	}
	if got[0].ID != "1" {
		t.Fatalf("first id got=%v, want 1", got[0].ID)
	}
}

func TestLoadEntriesRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "entries.json")
	if err := os.WriteFile(path, []byte("{not an array"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadEntries(Config{EntriesPath: path}); err == nil {
		t.Fatalf("expected parse error")
	}
}
