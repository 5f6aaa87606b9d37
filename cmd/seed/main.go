// Seeds the remote document store with the demo data set. Existing
// documents with the same ids are overwritten; everything else is left
// alone.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AsanTolepov/softwash/internal/config"
	"github.com/AsanTolepov/softwash/internal/infra"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/remote"
	"github.com/AsanTolepov/softwash/internal/seed"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var store remote.Store
	switch cfg.RemoteDriver {
	case "postgres":
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		store, err = remote.NewGormStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare document table")
		}
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		store = remote.NewRedisStore(rdb)
	default:
		log.Fatal().Str("driver", cfg.RemoteDriver).Msg("unknown remote driver")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total := 0
	for _, t := range seed.Tenants() {
		put(ctx, store, remote.CollectionTenants, t.ID, t, &total)
	}
	for _, o := range seed.Orders() {
		put(ctx, store, remote.CollectionOrders, o.ID, o, &total)
	}
	for _, s := range seed.Staff() {
		put(ctx, store, remote.CollectionStaff, s.ID, s, &total)
	}
	for _, e := range seed.Expenses() {
		put(ctx, store, remote.CollectionExpenses, e.ID, e, &total)
	}
	put(ctx, store, remote.CollectionMeta, remote.SettingsDocID, model.DefaultSettings(), &total)

	log.Info().Int("documents", total).Msg("seed complete")
}

func put(ctx context.Context, store remote.Store, collection, id string, value any, total *int) {
	if err := store.PutDocument(ctx, collection, id, value); err != nil {
		log.Fatal().Err(err).Str("collection", collection).Str("id", id).Msg("seed write failed")
	}
	*total++
}
