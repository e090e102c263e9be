package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join(cfg.DataDir, "graphtrain.db"), cfg.CredentialsPath())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GRAPHTRAIN_API_URL", "https://writing.example.com/api")
	t.Setenv("GRAPHTRAIN_TIMEOUT", "5s")
	t.Setenv("GRAPHTRAIN_DEBUG", "true")
	t.Setenv("GRAPHTRAIN_DATA_DIR", "/tmp/graphtrain-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://writing.example.com/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, filepath.Join("/tmp/graphtrain-test", "graphtrain.db"), cfg.CredentialsPath())
}
