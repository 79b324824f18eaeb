package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/ris-channel/infra/config"
	"github.com/drakos74/ris-channel/internal/sample"
	"github.com/drakos74/ris-channel/internal/storage"
	jsonstore "github.com/drakos74/ris-channel/internal/storage/file/json"
)

const label = "sample"

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// main stores a random sample, so that it can be served with the file source.
func main() {
	cfg := config.Default()
	if err := config.Load(config.Path, config.Key, &cfg); err != nil {
		log.Warn().Err(err).Msg("using default config")
	}

	dir := cfg.Sample.Dir
	if dir == "" {
		dir = storage.DefaultDir
	}

	random := sample.NewRandom()
	if cfg.Sample.Seed != 0 {
		random.WithSeed(cfg.Sample.Seed)
	}
	s, err := random.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not generate sample")
	}

	if err := jsonstore.NewJsonBlob(dir).Store(storage.Key{Label: label}, s); err != nil {
		log.Fatal().Err(err).Msg("could not store sample")
	}
	log.Info().Str("dir", dir).Str("file", label).Msg("stored sample")
}
