package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr       string
	DBPath     string
	MemoryPath string
	Model      string
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("missing -addr")
	}
	if c.DBPath == "" {
		return errors.New("missing -db")
	}
	if c.MemoryPath == "" {
		return errors.New("missing -memory")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Addr:       "127.0.0.1:8642",
		DBPath:     "inklight.db",
		MemoryPath: "memory.json",
		Model:      "gpt-4o-mini",
	}
}

// fileConfig mirrors Config for the optional YAML file. Flags given on
// the command line override file values.
type fileConfig struct {
	Addr       string `yaml:"addr"`
	DBPath     string `yaml:"db_path"`
	MemoryPath string `yaml:"memory_path"`
	Model      string `yaml:"model"`
}

func parseFlags(fset *flag.FlagSet, args []string) (Config, error) {
	defaults := defaultConfig()
	cfg := defaults
	var configFile string

	fset.SetOutput(os.Stderr)
	fset.StringVar(&configFile, "config", "", "Optional YAML config file")
	fset.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite entries database")
	fset.StringVar(&cfg.MemoryPath, "memory", cfg.MemoryPath, "Path to the derived memory JSON file")
	fset.StringVar(&cfg.Model, "model", cfg.Model, "Model for enhanced reflections (used only when OPENAI_API_KEY is set)")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if configFile != "" {
		fromFile, err := loadConfigFile(configFile)
		if err != nil {
			return Config{}, err
		}
		cfg = mergeConfig(fromFile, cfg, flagsSet(fset))
	}
	return cfg, nil
}

func loadConfigFile(path string) (fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, fmt.Errorf("config file %s does not exist", path)
		}
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

func flagsSet(fset *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// mergeConfig resolves precedence: explicit flag > file value > default.
func mergeConfig(file fileConfig, flags Config, set map[string]bool) Config {
	out := flags
	if !set["addr"] && file.Addr != "" {
		out.Addr = file.Addr
	}
	if !set["db"] && file.DBPath != "" {
		out.DBPath = file.DBPath
	}
	if !set["memory"] && file.MemoryPath != "" {
		out.MemoryPath = file.MemoryPath
	}
	if !set["model"] && file.Model != "" {
		out.Model = file.Model
	}
	return out
}
