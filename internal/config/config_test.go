package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.Server.Port)
	require.Equal(t, "postgres", cfg.Database.Type)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: "9000"
database:
  type: mysql
  mysql:
    host: db.internal
    port: 3306
    user: app
    password: pass
    database: metro
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, "mysql", cfg.Database.Type)
	require.Equal(t, "db.internal", cfg.Database.MySQL.Host)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_HOST", "override-host")
	t.Setenv("ACCESS_SECRET_KEY", "s3cret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "7777", cfg.Server.Port)
	require.Equal(t, "mysql", cfg.Database.Type)
	require.Equal(t, "override-host", cfg.Database.MySQL.Host)
	require.Equal(t, "override-host", cfg.Database.Postgres.Host)
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
}
