package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "local.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://bt2horizon.com,https://www.bt2horizon.com")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local.db", cfg.DatabaseURL)
	assert.Equal(t, "https://bt2horizon.com,https://www.bt2horizon.com", cfg.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, defaultPort, cfg.Port)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsDefaultSecretInProd(t *testing.T) {
	t.Setenv("DATABASE_URL", "local.db")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
