package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"

type Config struct {
	HTTPPort       string
	DatabaseDriver string // postgres | sqlite
	DatabaseDSN    string
	CORSOrigins    string
	LogLevel       string // silent | error | warn | info
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using process environment only")
	}

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseDSN:    getEnv("DATABASE_DSN", defaultDSN),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
	}

	switch cfg.DatabaseDriver {
	case "postgres":
	case "sqlite":
		if cfg.DatabaseDSN == defaultDSN {
			cfg.DatabaseDSN = "inventory.db"
		}
	default:
		log.Fatalf("[FATAL] unsupported DATABASE_DRIVER %q (postgres | sqlite)", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDriver == "postgres" && cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection string for production.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
