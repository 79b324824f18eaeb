package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/ris-channel/infra/config"
	"github.com/drakos74/ris-channel/internal/estimate"
	"github.com/drakos74/ris-channel/internal/metrics"
	"github.com/drakos74/ris-channel/internal/registry"
	"github.com/drakos74/ris-channel/internal/sample"
	"github.com/drakos74/ris-channel/internal/server"
	"github.com/drakos74/ris-channel/internal/storage"
	jsonstore "github.com/drakos74/ris-channel/internal/storage/file/json"
	"github.com/drakos74/ris-channel/internal/ui"
	"github.com/drakos74/ris-channel/internal/visual"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	cfg := config.Default()
	if err := config.Load(config.Path, config.Key, &cfg); err != nil {
		log.Warn().Err(err).Msg("using default config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	} else {
		zerolog.SetGlobalLevel(level)
	}

	port, err := cfg.ListenPort()
	if err != nil {
		log.Fatal().Err(err).Msg("could not resolve port")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	estimator := estimate.NewContext(registry.Default(), sample.NewStore(source(cfg.Sample)))
	page := ui.New(estimator, visual.WithCellSize(cfg.Heatmap.CellSize))

	srv := server.NewServer("ris", port).
		Add(server.Live()).
		Add(page.Routes()...).
		Handle("/metrics", metrics.Handler())
	if cfg.Debug {
		srv.Debug()
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func source(cfg config.Sample) sample.Source {
	if cfg.File != "" {
		if cfg.Dir == "" {
			cfg.Dir = storage.DefaultDir
		}
		log.Info().Str("dir", cfg.Dir).Str("file", cfg.File).Msg("loading sample from storage")
		return sample.NewFile(jsonstore.NewJsonBlob(cfg.Dir), cfg.File)
	}
	random := sample.NewRandom()
	if cfg.Seed != 0 {
		random.WithSeed(cfg.Seed)
	}
	return random
}
