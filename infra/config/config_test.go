package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.json"), []byte(`{"port": 9000, "sample": {"seed": 42}}`), 0644))

	cfg := Default()
	err := Load(dir, "test", &cfg)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, uint64(42), cfg.Sample.Seed)
	// defaults are kept
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 36, cfg.Heatmap.CellSize)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"port":`), 0644))

	cfg := Default()
	assert.Error(t, Load(dir, "missing", &cfg))
	assert.Error(t, Load(dir, "broken", &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Default(t *testing.T) {
	cfg := Config{}
	require.NoError(t, Load(".", Key, &cfg))
	assert.Equal(t, Default().Port, cfg.Port)
	assert.Equal(t, Default().Heatmap, cfg.Heatmap)
}

func TestConfig_ListenPort(t *testing.T) {

	type test struct {
		env  string
		port int
		err  bool
	}

	tests := map[string]test{
		"config": {
			port: 8501,
		},
		"env": {
			env:  "9090",
			port: 9090,
		},
		"invalid": {
			env: "http",
			err: true,
		},
		"negative": {
			env: "-1",
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(PortEnv, tt.env)
			port, err := Default().ListenPort()
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.port, port)
		})
	}
}
