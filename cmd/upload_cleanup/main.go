package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"hireme/internal/config"
	"hireme/internal/database"
	"hireme/internal/modules/upload"
	"hireme/internal/pkg/logger"
	"hireme/internal/repository"

	"go.uber.org/zap"
)

func main() {
	maxAge := flag.Duration("max-age", 24*time.Hour, "purge reservations older than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL, false)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	store, err := upload.NewStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("object store init failed", zap.Error(err))
	}

	svc := upload.NewService(repository.NewUploadRepository(db), store, "")
	removed, err := svc.PurgeStale(ctx, *maxAge)
	if err != nil {
		log.Fatal("upload cleanup failed", zap.Error(err), zap.Int("removed", removed))
	}
	log.Info("upload cleanup completed", zap.Int("removed", removed), zap.Duration("max_age", *maxAge))
}
