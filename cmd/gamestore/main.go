package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"game-marketplace/internal/cli"
	"game-marketplace/internal/config"
	"game-marketplace/internal/logger"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so the logger is flushed before main exits.
func run(ctx context.Context, args []string, out io.Writer) error {
	// a missing .env is fine, the process env still applies
	envErr := godotenv.Load()

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debugw("no .env file loaded", "error", envErr)
	}

	app, err := cli.NewApp(ctx, cfg, log, out)
	if err != nil {
		log.Errorw("start gamestore", "environment", cfg.Environment.Name, "error", err)
		return err
	}
	defer app.Close()

	if err := cli.Execute(ctx, app, args, out); err != nil {
		log.Errorw("command failed", "args", args, "error", err)
		return err
	}

	return nil
}
