// Command journald serves the journaling API: entry storage, local
// insights, and reflections with an optional enhanced remote path.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/thelanternworks/inklight/reflection"
	"github.com/thelanternworks/inklight/server"
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

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("journald exited", zap.Error(err))
	}
}

func run(cfg Config, log *zap.Logger) error {
	entries, err := storage.OpenEntryStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open entry store: %w", err)
	}
	defer entries.Close()

	memory := storage.NewMemoryStore(cfg.MemoryPath)
	engine := reflection.NewEngine(rand.New(rand.NewSource(time.Now().UnixNano())))

	var remote reflection.RemoteReflector
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		client := openai.NewClient(option.WithAPIKey(apiKey))
		remote = reflection.NewOpenAIReflector(&client, cfg.Model)
		log.Info("enhanced reflections enabled", zap.String("model", cfg.Model))
	} else {
		log.Info("no OPENAI_API_KEY set, reflections are local only")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(log, entries, memory, engine, remote).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
