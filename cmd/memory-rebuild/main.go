// Command memory-rebuild derives the user memory from scratch by
// replaying stored entries through the extractor. The memory file is a
// cache, so this is always safe to run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/thelanternworks/inklight/analysis"
	"github.com/thelanternworks/inklight/storage"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	entries, err := loadEntries(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	memory := analysis.BuildMemoryFromEntries(entries, time.Now())

	if cfg.DryRun {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(memory); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}

	if err := storage.NewMemoryStore(cfg.MemoryPath).Save(memory); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Printf("rebuilt memory from %d entries: %d coping, %d likes, %d stressors, %d wins\n",
		len(entries), len(memory.Coping), len(memory.Likes), len(memory.Stressors), len(memory.Wins))
}

func loadEntries(cfg Config) ([]analysis.Entry, error) {
	if cfg.EntriesPath != "" {
		b, err := os.ReadFile(cfg.EntriesPath)
		if err != nil {
			return nil, fmt.Errorf("read entries file: %w", err)
		}
		var entries []analysis.Entry
		if err := json.Unmarshal(b, &entries); err != nil {
			return nil, fmt.Errorf("parse entries file: %w", err)
		}
		return entries, nil
	}

	store, err := storage.OpenEntryStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.List(context.Background(), 0)
}
