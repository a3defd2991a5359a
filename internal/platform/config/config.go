// Package config loads the server configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// DatabaseDSN is the Postgres connection string.
	DatabaseDSN string

	// SessionSecret signs the session cookie.
	SessionSecret string

	// RunMigrations enables GORM AutoMigrate at startup.
	RunMigrations bool
}

// LoadDefaults resets the config to its development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = "host=localhost user=postgres password=postgres dbname=feedback port=5432 sslmode=disable"
	c.SessionSecret = "secret"
	c.RunMigrations = true
}

// Load reads a .env file if present, then applies environment overrides on
// top of the defaults.
func Load() *Config {
	// Missing .env is fine; env vars may come from the process environment.
	_ = godotenv.Load()

	var c Config
	c.LoadDefaults()

	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.DatabaseDSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.SessionSecret = v
	}
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		c.RunMigrations = v == "true"
	}
	return &c
}
