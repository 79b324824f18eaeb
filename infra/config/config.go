package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	// Path is the default config directory.
	Path = "infra/config"
	// Key is the config key of the demo.
	Key = "ris"
	// PortEnv overrides the configured port.
	PortEnv = "RIS_PORT"
)

// Config holds the process configuration.
type Config struct {
	Port     int     `json:"port"`
	LogLevel string  `json:"log_level"`
	Debug    bool    `json:"debug"`
	Sample   Sample  `json:"sample"`
	Heatmap  Heatmap `json:"heatmap"`
}

// Sample configures the sample data source.
// A non-empty file switches from random samples to the stored one.
type Sample struct {
	Seed uint64 `json:"seed"`
	Dir  string `json:"dir"`
	File string `json:"file"`
}

// Heatmap configures the rendering of the heatmaps.
type Heatmap struct {
	CellSize int `json:"cell_size"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Port:     8501,
		LogLevel: "info",
		Heatmap: Heatmap{
			CellSize: 36,
		},
	}
}

// Load loads the config for the given key on top of the given value.
// Fields missing from the file keep their current values.
func Load(dir, key string, v interface{}) error {
	p := filepath.Join(dir, fmt.Sprintf("%s.json", key))
	b, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("config", key).Str("path", p).Msg("loaded config")
	return nil
}

// ListenPort returns the port to listen to, giving priority to the environment.
func (c Config) ListenPort() (int, error) {
	env := os.Getenv(PortEnv)
	if env == "" {
		return c.Port, nil
	}
	var port int
	if _, err := fmt.Sscanf(env, "%d", &port); err != nil || port <= 0 {
		return 0, fmt.Errorf("invalid port '%s' in %s", env, PortEnv)
	}
	return port, nil
}
