package main

import (
	"errors"
	"flag"
	"os"
)

type Config struct {
	DBPath      string
	EntriesPath string
	MemoryPath  string
	DryRun      bool
}

func (c Config) Validate() error {
	if c.DBPath == "" && c.EntriesPath == "" {
		return errors.New("missing -db or -entries")
	}
	if c.DBPath != "" && c.EntriesPath != "" {
		return errors.New("-db and -entries are mutually exclusive")
	}
	if c.MemoryPath == "" {
		return errors.New("missing -memory")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		MemoryPath: "memory.json",
	}
}

func parseFlags(fset *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fset.SetOutput(os.Stderr)
	fset.StringVar(&cfg.DBPath, "db", "", "Path to the SQLite entries database")
	fset.StringVar(&cfg.EntriesPath, "entries", "", "Path to an entries JSON file (array of entries)")
	fset.StringVar(&cfg.MemoryPath, "memory", cfg.MemoryPath, "Destination path for the derived memory JSON")
	fset.BoolVar(&cfg.DryRun, "dry-run", false, "Print the derived memory without writing it")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
