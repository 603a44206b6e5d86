package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tamapet/config"
	"tamapet/internal/database"
	"tamapet/internal/jobs"
	"tamapet/internal/router"
	"tamapet/pkg/emotion"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.Env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	predictor := emotion.NewClient(cfg.ModelBaseURL, cfg.ModelTimeout)

	deps := router.Build(cfg, db, loc, predictor)
	engine := router.Setup(cfg, deps)

	scheduler := jobs.NewScheduler(loc, deps.Daily)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	go func() {
		log.Infof("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
	log.Info("server stopped")
}
