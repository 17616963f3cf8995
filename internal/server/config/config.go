// Package config handles runtime configuration for the server: defaults,
// JSON overlay, environment variables, and command-line flags, applied in
// that order.
package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the auth server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). There is no
//     default; the process refuses to start without one.
//   - TokenValidityDuration: session token lifetime.
//   - PasswordHashCost: bcrypt cost factor. Raising it makes offline attacks
//     on a leaked store more expensive; tests may lower it.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	PasswordHashCost      int
}

// LoadDefaults populates Config with development defaults. The signing secret
// deliberately has none and must be supplied via file, environment, or flag.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = ""
	c.TokenValidityDuration = 1 * time.Hour
	c.PasswordHashCost = bcrypt.DefaultCost
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
