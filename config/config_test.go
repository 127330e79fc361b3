package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ALGORITHM", "HS256")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
	t.Setenv("DATABASE_URL", "sqlite://:memory:")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://app.example.com")
}

func TestLoadReadsEnvironment(t *testing.T) {
	setValidEnv(t)

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "test-secret", cfg.SecretKey)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenExpires)
	assert.Equal(t, "sqlite://:memory:", cfg.DatabaseURL)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.AllowOrigins)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	for _, key := range []string{"ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES", "DATABASE_URL", "PORT", "LOG_LEVEL", "LOG_FORMAT", "BCRYPT_COST", "GIN_MODE", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenExpires)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "sqlite://expense-tracker.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ALGORITHM", "RS256")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")
	t.Setenv("DATABASE_URL", "mysql://localhost/db")
	t.Setenv("PORT", "70000")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("BCRYPT_COST", "99")

	err := Load().Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"SECRET_KEY is required",
		"invalid ALGORITHM 'RS256'",
		"invalid ACCESS_TOKEN_EXPIRE_MINUTES",
		"invalid DATABASE_URL",
		"invalid port 70000",
		"invalid LOG_LEVEL 'loud'",
		"invalid LOG_FORMAT 'xml'",
		"invalid BCRYPT_COST 99",
	} {
		assert.True(t, strings.Contains(msg, want), "expected %q in %q", want, msg)
	}
}

func TestValidateReportsUnparsableNumbers(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "3O")
	t.Setenv("BCRYPT_COST", "ten")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "invalid ACCESS_TOKEN_EXPIRE_MINUTES '3O'")
	assert.Contains(t, msg, "invalid BCRYPT_COST 'ten'")
	assert.Contains(t, msg, "invalid SHUTDOWN_TIMEOUT 'soon'")
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenExpires)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
