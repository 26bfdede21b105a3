// Command insights prints the derived views over a journal: mood
// timeline, ranked themes, weekly summary, and what-helped suggestions.
// It reads entries from the SQLite store or a plain JSON file and never
// touches the network.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/thelanternworks/inklight/analysis"
	"github.com/thelanternworks/inklight/storage"
)

type report struct {
	Timeline   []analysis.DayPoint    `json:"timeline"`
	Themes     []analysis.Theme       `json:"themes"`
	Weekly     analysis.WeeklySummary `json:"weekly"`
	WhatHelped []analysis.HelpItem    `json:"what_helped"`
}

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
	memory, err := storage.NewMemoryStore(cfg.MemoryPath).Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	rep := buildReport(entries, memory, cfg.Days, time.Now())

	if cfg.JSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}
	printReport(os.Stdout, rep)
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

func buildReport(entries []analysis.Entry, memory analysis.UserMemory, days int, now time.Time) report {
	timeline := analysis.BuildMoodTimeline(entries, days, now)
	themes := analysis.ExtractThemes(entries, 3)
	return report{
		Timeline:   timeline,
		Themes:     themes,
		Weekly:     analysis.BuildWeeklySummary(entries, themes, timeline, now),
		WhatHelped: analysis.WhatHelped(memory, timeline),
	}
}

func printReport(w io.Writer, rep report) {
	fmt.Fprintln(w, rep.Weekly.Headline)
	fmt.Fprintln(w, rep.Weekly.Summary)
	for _, b := range rep.Weekly.Bullets {
		fmt.Fprintln(w, "  -", b)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mood timeline:")
	for _, p := range rep.Timeline {
		bar := moodBar(p.Avg)
		fmt.Fprintf(w, "  %s %s %-10s %s\n", p.DateKey, p.Day, p.Label, bar)
	}

	if len(rep.Themes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Themes:")
		for _, th := range rep.Themes {
			fmt.Fprintf(w, "  %s (%d)\n    %s\n", th.Label, th.Score, th.Summary)
		}
	}

	if len(rep.WhatHelped) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "What has helped:")
		for _, h := range rep.WhatHelped {
			fmt.Fprintf(w, "  %s — %s\n", h.Label, h.Detail)
		}
	}
}

// moodBar renders a tiny centered bar: negative scores extend left of
// the axis, positive right. Scores live in [-3, 3].
func moodBar(avg float64) string {
	const width = 6
	n := int(avg * 2)
	if n > width {
		n = width
	}
	if n < -width {
		n = -width
	}
	switch {
	case n > 0:
		return "|" + strings.Repeat("+", n)
	case n < 0:
		return strings.Repeat("-", -n) + "|"
	default:
		return "|"
	}
}
