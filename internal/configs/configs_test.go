package configs

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "LOG_LEVEL", "ALLOWED_ORIGINS", "JWT_SECRET", "TOKEN_TTL",
		"BCRYPT_COST", "AUTH_RATE", "AUTH_BURST", "DATABASE_URL", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "OWNER_USERNAME", "OWNER_PASSWORD", "DEFAULT_ROOM",
	} {
		// Setenv registers the restore, Unsetenv makes the key absent so defaults apply.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_DevelopmentDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, devDatabaseDSN, cfg.DatabaseDSN)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "Lazyprobg", cfg.OwnerUsername)
	assert.Equal(t, "French Reborn", cfg.DefaultRoomName)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Production(t *testing.T) {
	base := map[string]string{
		"ENVIRONMENT":    "production",
		"JWT_SECRET":     strings.Repeat("s", MinSecretLength),
		"DATABASE_URL":   "postgres://u:p@db:5432/app",
		"OWNER_PASSWORD": "owner-secret",
	}

	t.Run("valid", func(t *testing.T) {
		clearEnv(t)
		for k, v := range base {
			t.Setenv(k, v)
		}
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.False(t, cfg.IsDevelopment())
	})

	failures := map[string][2]string{
		"missing secret":   {"JWT_SECRET", ""},
		"short secret":     {"JWT_SECRET", "short"},
		"missing database": {"DATABASE_URL", ""},
		"missing owner pw": {"OWNER_PASSWORD", ""},
		"privileged port":  {"PORT", "80"},
		"bcrypt too low":   {"BCRYPT_COST", "2"},
	}

	for name, override := range failures {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range base {
				t.Setenv(k, v)
			}
			t.Setenv(override[0], override[1])
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
