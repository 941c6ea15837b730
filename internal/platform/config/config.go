// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, search weights) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/innergarden/gallery/internal/platform/i18n"
)

// # Configuration Schema

// Config holds all runtime configuration for the gallery API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL      string `env:"DATABASE_URL,required"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// CatalogSeedPath optionally points to a JSON array of artwork records
	// imported at start-up when the catalogue table is empty.
	CatalogSeedPath string `env:"CATALOG_SEED_PATH"`

	// Key-Value Store (Redis) for visitor favourites
	RedisURL      string `env:"REDIS_URL,required"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Cryptographic keys for admin token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Admin panel credentials (bcrypt hash, never the plain password)
	AdminUsername     string `env:"ADMIN_USERNAME"       envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Optional curator account: may edit artworks but not delete or import them
	CuratorUsername     string `env:"CURATOR_USERNAME"`
	CuratorPasswordHash string `env:"CURATOR_PASSWORD_HASH"`

	// Localisation
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"uk"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"innergarden.art"`

	// Search relevance weights
	Scoring Scoring
}

// Scoring holds the tunable relevance weights of the collection search.
//
// The defaults reproduce the ranking the collection browser has always shipped with.
type Scoring struct {
	Exact        float64 `env:"SCORE_EXACT"         envDefault:"6"`
	Substring    float64 `env:"SCORE_SUBSTRING"     envDefault:"3"`
	Category     float64 `env:"SCORE_CATEGORY"      envDefault:"2"`
	Mood         float64 `env:"SCORE_MOOD"          envDefault:"1.5"`
	PrimaryMood  float64 `env:"SCORE_PRIMARY_MOOD"  envDefault:"0"`
	Palette      float64 `env:"SCORE_PALETTE"       envDefault:"1"`
	Space        float64 `env:"SCORE_SPACE"         envDefault:"1"`
	Availability float64 `env:"SCORE_AVAILABILITY"  envDefault:"1.5"`
	Price        float64 `env:"SCORE_PRICE"         envDefault:"1.5"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if _, ok := i18n.Parse(cfg.DefaultLanguage); !ok {
		return nil, fmt.Errorf("config: unsupported DEFAULT_LANGUAGE %q", cfg.DefaultLanguage)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Language returns the configured default content language.
func (c *Config) Language() i18n.Language {
	lang, ok := i18n.Parse(c.DefaultLanguage)
	if !ok {
		return i18n.Default
	}
	return lang
}

// OriginSuffix returns the domain suffix trusted by the CORS middleware.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
