package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"rowtrack/pkg/validation"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	Port        string `json:"port" validate:"required"`
	DBDriver    string `json:"dbDriver" validate:"oneof=sqlite postgres"`
	DBPath      string `json:"dbPath" validate:"required_if=DBDriver sqlite"`
	DatabaseURL string `json:"databaseUrl" validate:"required_if=DBDriver postgres"`
	LogMode     string `json:"logMode" validate:"oneof=dev prod production test"`
}

// Load reads .env when present, then the process environment.
func Load() (AppConfig, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from any env-like lookup function.
func FromLookup(lookup func(string) (string, bool)) (AppConfig, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBDriver:    strings.ToLower(get("DB_DRIVER", DriverSQLite)),
		DBPath:      get("DB_PATH", "rowtrack.db"),
		DatabaseURL: get("DATABASE_URL", ""),
		LogMode:     strings.ToLower(get("LOG_MODE", "dev")),
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
