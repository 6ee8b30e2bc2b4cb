package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Engine.TopN)
	assert.Equal(t, 0.35, cfg.MCDA.Space)
	assert.Equal(t, 0.15, cfg.MCDA.Reliability)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRUCKREC_SERVER_ADDR", ":9090")
	t.Setenv("TRUCKREC_ENGINE_TOP_N", "5")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Engine.TopN)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
