package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GreenD94/ladingburger-sub002/config"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("logger initialized")
}

func main() {
	initLogger()
	log := logger.GetAppLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	app, err := newApplication(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap application: %v", err)
	}
	defer app.store.Close()

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	if err := app.ensureDefaultData(bootCtx); err != nil {
		cancelBoot()
		log.Fatalf("failed to load default data: %v", err)
	}
	cancelBoot()

	fiberApp, err := app.initFiberApp()
	if err != nil {
		log.Fatalf("failed to initialize http server: %v", err)
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	go utility.GoProtect(func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fiberApp.ShutdownWithContext(ctx); err != nil {
			log.WithError(err).Error("forced shutdown")
		}
	})

	log.WithField("address", cfg.Address).Info("starting server")
	if err := fiberApp.Listen(cfg.Address); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
