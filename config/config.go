package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Port      string
	DBPath    string
	JWTSecret string
	Timezone  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "plantlog.db"),
		JWTSecret: get("JWT_SECRET", "dev-secret-change-me"),
		Timezone:  get("TZ", "UTC"),
	}
	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("config loaded")
	return cfg
}
