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
	Days        int
	JSONOut     bool
}

func (c Config) Validate() error {
	if c.DBPath == "" && c.EntriesPath == "" {
		return errors.New("missing -db or -entries")
	}
	if c.DBPath != "" && c.EntriesPath != "" {
		return errors.New("-db and -entries are mutually exclusive")
	}
	if c.Days < 1 || c.Days > 90 {
		return errors.New("days must be between 1 and 90")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		MemoryPath: "memory.json",
		Days:       14,
	}
}

func parseFlags(fset *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fset.SetOutput(os.Stderr)
	fset.StringVar(&cfg.DBPath, "db", "", "Path to the SQLite entries database")
	fset.StringVar(&cfg.EntriesPath, "entries", "", "Path to an entries JSON file (array of entries)")
	fset.StringVar(&cfg.MemoryPath, "memory", cfg.MemoryPath, "Path to the derived memory JSON file")
	fset.IntVar(&cfg.Days, "days", cfg.Days, "Days of mood timeline to build (1-90)")
	fset.BoolVar(&cfg.JSONOut, "json", false, "Print the report as JSON")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
