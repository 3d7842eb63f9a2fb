package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/config"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/logger"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "interim-sheets-sync")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	svc, err := service.NewSyncService(cfg, log)
	if err != nil {
		log.Fatal("failed to initialise sync service", zap.Error(err))
	}
	defer svc.Close()

	if err := svc.Run(ctx); err != nil {
		log.Fatal("sync run aborted", zap.Error(err))
	}
	log.Info("sync run completed")
}
