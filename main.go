package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pairs/assets"
	"github.com/robalobadob/pairs/internal/config"
	"github.com/robalobadob/pairs/internal/faces"
	"github.com/robalobadob/pairs/internal/httpserver"
	"github.com/robalobadob/pairs/internal/kv"
	"github.com/robalobadob/pairs/internal/scores"
	"github.com/robalobadob/pairs/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	all, err := faces.Resolve(cfg.FacesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load faces")
	}
	dealt, err := faces.Pick(all, cfg.Pairs)
	if err != nil {
		log.Fatal().Err(err).Msg("not enough faces")
	}

	var kvStore scores.Store
	switch cfg.ScoreBackend {
	case config.BackendMemory:
		kvStore = kv.NewMemory()
	default:
		st, db, err := kv.OpenSQLite(cfg.DBPath, assets.Migrations())
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open score database")
		}
		defer db.Close()
		kvStore = st
	}

	srv := httpserver.New(httpserver.Options{
		Sessions:     store.NewMemoryStore(),
		Scores:       scores.NewManager(kvStore, cfg.ScoreKey),
		Faces:        dealt,
		Secret:       cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})

	log.Info().Str("port", cfg.Port).Str("backend", cfg.ScoreBackend).Int("pairs", len(dealt)).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
