package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "shifts"
user = "app"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "shifts", cfg.Database.DBName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "host=localhost port=5432 user=app password= dbname=shifts sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "shifts"
`)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RABBITMQ_URL", "amqp://guest:guest@mq:5672/")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[logs]
level = "verbose"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("DB_PORT", "not-a-number")
	_, err = Load(writeConfig(t, "[database]\ndbname = \"x\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
