// Command reflect prints a reflection for one journal entry, read from
// -text or stdin. The output is always produced: the enhanced path
// falls back to the local engine on any failure.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/thelanternworks/inklight/reflection"
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

	text := cfg.Text
	if text == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read stdin:", err)
			os.Exit(1)
		}
		text = string(b)
	}

	memory, err := storage.NewMemoryStore(cfg.MemoryPath).Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := reflection.NewEngine(rand.New(rand.NewSource(seed)))

	var out reflection.Output
	if cfg.Enhanced {
		var remote reflection.RemoteReflector
		if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
			client := openai.NewClient(option.WithAPIKey(apiKey))
			remote = reflection.NewOpenAIReflector(&client, cfg.Model)
		} else {
			fmt.Fprintln(os.Stderr, "warning: -enhanced set but OPENAI_API_KEY is empty, using local reflection")
		}
		out = engine.Enhanced(context.Background(), remote, text, memory)
	} else {
		out = engine.Local(text, memory)
	}

	if cfg.JSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}
	printReflection(os.Stdout, out)
}

func printReflection(w io.Writer, out reflection.Output) {
	fmt.Fprintln(w, out.Mirror)
	if out.Question != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, out.Question)
	}
	if len(out.Nudges) > 0 {
		fmt.Fprintln(w)
		for _, n := range out.Nudges {
			fmt.Fprintln(w, "  -", n)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "mode:", out.Mode)
}
