package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cantina/internal/config"
	"cantina/internal/repository"
	"cantina/internal/router"
	"cantina/internal/service"
	"cantina/internal/store"
	"cantina/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	st, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open record store")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pre-materialize daily checklists shortly after midnight.
	sectorRepo := repository.NewSectorRepository(st)
	taskRepo := repository.NewTaskRepository(st)
	checklistRepo := repository.NewChecklistRepository(st)
	materializer := &worker.DailyMaterializer{
		Sectors:    sectorRepo,
		Checklists: service.NewChecklistService(sectorRepo, taskRepo, checklistRepo),
		Spec:       cfg.DailyCronSpec,
	}
	if err := materializer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start daily materializer")
	}

	r := router.New(cfg, st)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Cantina backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// newStore selects the record-store driver from config.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		return store.NewGormStore(cfg.SQLitePath)
	case "redis":
		rdb, err := store.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(rdb), nil
	default:
		return store.NewFileStore(cfg.DataDir)
	}
}
