package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RepositoryConfig(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load("local", ".")
	require.NoError(t, err)

	assert.Equal(t, "SkillLink - Freelancer Marketplace", cfg.App.Title)
	assert.Equal(t, 1200, cfg.App.WindowWidth)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 100*time.Millisecond, cfg.DB.SlowQueryThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("MQ_URL", "amqp://guest:guest@mq:5672/")

	cfg, err := Load("base", ".")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.MQ.URL)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("db:\n  name: other\n"), 0o600))

	cfg, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "other", cfg.DB.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Port)
}
