package main

import (
	"bytes"
	"flag"
	"math/rand"
	"strings"
	"testing"

	"github.com/thelanternworks/inklight/analysis"
	"github.com/thelanternworks/inklight/reflection"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(flag.NewFlagSet("reflect", flag.ContinueOnError),
		[]string{"-text", "rough day", "-enhanced", "-seed", "42"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Text != "rough day" {
		t.Fatalf("text got=%q", cfg.Text)
	}
	if !cfg.Enhanced {
		t.Fatalf("enhanced not set")
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed got=%d, want 42", cfg.Seed)
	}
}

func TestValidateEnhancedNeedsModel(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Enhanced = true
	cfg.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for enhanced without model")
	}
}

func TestPrintReflection(t *testing.T) {
	t.Parallel()

	engine := reflection.NewEngine(rand.New(rand.NewSource(9)))
	out := engine.Local("Work was brutal today and I can't switch off.", analysis.UserMemory{})

	var buf bytes.Buffer
	printReflection(&buf, out)
	text := buf.String()
	if !strings.Contains(text, out.Mirror) {
		t.Fatalf("output missing mirror: %q", text)
	}
	if !strings.Contains(text, "mode: local") {
		t.Fatalf("output missing mode line: %q", text)
	}
}
