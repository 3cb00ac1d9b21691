package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, 200*time.Millisecond, cfg.Logger.SlowQueryThreshold())
	assert.Equal(t, SessionProviderRedis, cfg.Session.Provider)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 5*time.Second, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, "OANDA:XAUUSD", cfg.Dashboard.ChartSymbol)
	assert.Equal(t, "/images/placeholder-avatar.png", cfg.Dashboard.PlaceholderAvatar)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "HTTP_PORT=9090\nSESSION_PROVIDER=jwt\nSESSION_JWT_SECRET=from-file\nDASHBOARD_RENDER_WAIT=750ms\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("SESSION_JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.Equal(t, SessionProviderJWT, cfg.Session.Provider)
	assert.Equal(t, "from-env", cfg.Session.JWTSecret)
	assert.Equal(t, 750*time.Millisecond, cfg.Dashboard.RenderWait)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	t.Run("jwt without secret", func(t *testing.T) {
		cfg := base()
		cfg.Session.Provider = SessionProviderJWT
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_JWT_SECRET")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.Session.Provider = "cookie-jar"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown SESSION_PROVIDER")
	})

	t.Run("non-positive timeouts", func(t *testing.T) {
		cfg := base()
		cfg.Dashboard.RenderWait = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable", db.DSN())
}
