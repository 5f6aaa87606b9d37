package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/AsanTolepov/softwash/internal/auth"
	"github.com/AsanTolepov/softwash/internal/config"
	"github.com/AsanTolepov/softwash/internal/infra"
	"github.com/AsanTolepov/softwash/internal/remote"
	"github.com/AsanTolepov/softwash/internal/router"
	"github.com/AsanTolepov/softwash/internal/service"
	"github.com/AsanTolepov/softwash/internal/session"
	"github.com/AsanTolepov/softwash/internal/store"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// ── Remote document store ────────────────────────────────────────────────
	var (
		remoteStore remote.Store
		db          *gorm.DB
		rdb         *redis.Client
	)
	switch cfg.RemoteDriver {
	case "postgres":
		db, err = infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		remoteStore, err = remote.NewGormStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare document table")
		}
	case "redis":
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		remoteStore = remote.NewRedisStore(rdb)
	default:
		log.Fatal().Str("driver", cfg.RemoteDriver).Msg("unknown remote driver")
	}

	// ── Cache, sessions, pipeline ────────────────────────────────────────────
	cache := store.New(remoteStore, nil)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	cache.Load(loadCtx)
	loadCancel()

	sessions := session.NewFileStore(cfg.SessionFile)
	resolver := auth.NewResolver(cache, sessions)
	resolver.Restore()

	var translator service.Translator
	if cfg.TranslateURL != "" {
		translator = infra.NewTranslateClient(cfg.TranslateURL)
	}

	svc := service.New(cache, remoteStore, resolver, translator, nil)

	r := router.New(cfg, svc, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("softwash backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
