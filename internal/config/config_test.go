package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"DB_URL", "DB_HOST", "DB_NAME", "JWT_EXPIRY", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "CORS_ORIGINS", "AUTO_MIGRATE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "scholar", cfg.Database.Name)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_EXPIRY", "3600")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SERVER_PORT", "")
	os.Unsetenv("SERVER_PORT")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\n"), 0o600))

	cfg := Load()
	assert.Equal(t, "9191", cfg.Server.Port)
}

func TestDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db"
	cfg.Database.Port = "5432"
	cfg.Database.User = "app"
	cfg.Database.Password = "p@ss"
	cfg.Database.Name = "scholar"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"

	assert.Equal(t, "postgres://app:p%40ss@db:5432/scholar?search_path=public&sslmode=disable", cfg.DSN())

	cfg.Database.URL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}
