package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Catalog  *Catalog
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Catalog points at a remote client/service catalog. Empty means the catalog
// tables live in the ledger's own database.
type Catalog struct {
	HostString string `env:"CATALOG_ADDRESS"`
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, nil)
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var db Database
	var http HTTP
	var catalog Catalog
	var app App

	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&catalog.HostString, "c", "", "Catalog service address")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")

	if args == nil {
		flag.Parse()
	} else if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&catalog)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Catalog:  &catalog,
		App:      &app,
	}

	return &config, nil
}
