package main

import (
	"errors"
	"flag"
	"os"
)

type Config struct {
	Text       string
	MemoryPath string
	Enhanced   bool
	Model      string
	JSONOut    bool
	Seed       int64
}

func (c Config) Validate() error {
	if c.Enhanced && c.Model == "" {
		return errors.New("missing -model for -enhanced")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		MemoryPath: "memory.json",
		Model:      "gpt-4o-mini",
	}
}

func parseFlags(fset *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fset.SetOutput(os.Stderr)
	fset.StringVar(&cfg.Text, "text", "", "Entry text (default: read from stdin)")
	fset.StringVar(&cfg.MemoryPath, "memory", cfg.MemoryPath, "Path to the derived memory JSON file")
	fset.BoolVar(&cfg.Enhanced, "enhanced", false, "Try the remote model first (requires OPENAI_API_KEY)")
	fset.StringVar(&cfg.Model, "model", cfg.Model, "Model for enhanced reflections")
	fset.BoolVar(&cfg.JSONOut, "json", false, "Print the reflection as JSON")
	fset.Int64Var(&cfg.Seed, "seed", 0, "Seed for phrasing choices (0 = clock)")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
