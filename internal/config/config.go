// Package config handles runtime configuration: development defaults
// overridden by environment variables.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the auction server.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Override in prod.
//   - TokenValidityDuration: access token lifetime.
type Config struct {
	Addr                  string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key default is insecure and must be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 30 * time.Minute
}

// LoadConfig builds a Config from defaults overlaid with environment
// variables: PORT, DATABASE_DSN, SECRET_KEY, TOKEN_TTL.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if p := os.Getenv("PORT"); p != "" {
		cfg.Addr = ":" + p
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if key := os.Getenv("SECRET_KEY"); key != "" {
		cfg.SecretKey = key
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenValidityDuration = d
		}
	}
	return cfg
}
