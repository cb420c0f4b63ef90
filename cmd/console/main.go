package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/maintodesk/gmao-console/internal/cli"
	"github.com/maintodesk/gmao-console/internal/config"
	"github.com/maintodesk/gmao-console/pkg/logger"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.Root(cfg, log)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("commande échouée")
		os.Exit(1)
	}
}
