package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatasetConfig struct {
	// Source is a local CSV path or an http(s) URL.
	Source string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// A local .env is a convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "jobpulse"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	cfg.Dataset = DatasetConfig{
		Source: req("DATASET_PATH"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, "development")
}
