// Package main is the Xallet companion entry point.
// It loads the configuration, builds the application and runs it until
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/app"
	"github.com/skyuu2025-stack/xallet/internal/config"
)

func main() {
	setupLogging()

	log.Info("=== Xallet is starting ===")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := log.ParseLevel(cfg.AppLogLevel)
	if err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}
	defer application.Close()

	if err := application.Scheduler.Start(ctx); err != nil {
		log.WithError(err).Error("Failed to start scheduler")
		os.Exit(1)
	}
	defer application.Scheduler.Stop()

	log.Info("=== Xallet is ready ===")

	// Start blocks until ctx is cancelled by a signal.
	if err := application.Bot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Bot stopped with error")
		application.Scheduler.Stop()
		application.Close()
		os.Exit(1)
	}

	log.Info("=== Xallet stopped ===")
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
