package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/contactkeval/bsm-pricer/internal/config"
	"github.com/contactkeval/bsm-pricer/internal/logger"
	"github.com/contactkeval/bsm-pricer/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("loading config: %v", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.SetVerbosity(cfg.LogVerbosity)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, nil, logger.L())
	logger.Infof("starting pricing server on %s", cfg.Addr)
	if err := srv.Run(ctx); err != nil {
		logger.Errorf("server failed: %v", err)
		logger.Sync()
		os.Exit(1)
	}
}
