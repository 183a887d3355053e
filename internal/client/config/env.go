package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is loaded first when present; it is
// optional and never overrides variables already set.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TASKBOARD_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("TASKBOARD_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TASKBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
