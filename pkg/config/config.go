// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App is the full application configuration.
type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	HTTP HTTP
	DB   DB
}

// HTTP configures the two listeners: the JSON API and the server
// rendered web UI.
type HTTP struct {
	APIPort string `envconfig:"API_PORT" default:"8080"`
	UIPort  string `envconfig:"UI_PORT" default:"8081"`
}

// DB selects and configures the relational store.
type DB struct {
	// Driver is "sqlite" or "postgres".
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/pennypilote.db"`
	// URL is the postgres DSN; required when Driver is "postgres".
	URL string `envconfig:"DATABASE_URL"`
}

// Load reads .env if present, then the environment.
func Load() (*App, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
