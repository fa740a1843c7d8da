package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "DATABASE_DRIVER", "DATABASE_DSN", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=inv")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://inventory.example.com")
	t.Setenv("LOG_LEVEL", "info")

	cfg := Load()
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "host=db user=app dbname=inv", cfg.DatabaseDSN)
	assert.Equal(t, "https://inventory.example.com", cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestSQLiteGetsFileDSNByDefault(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "")

	cfg := Load()
	assert.Equal(t, "inventory.db", cfg.DatabaseDSN)

	t.Setenv("DATABASE_DSN", "/tmp/custom.db")
	assert.Equal(t, "/tmp/custom.db", Load().DatabaseDSN)
}
