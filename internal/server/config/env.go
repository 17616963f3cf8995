package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is the DTO for environment-variable overrides. An unset variable
// leaves the corresponding Config field untouched.
type envConfig struct {
	EndpointAddr          string        `env:"AUTHD_ADDRESS"`
	SecretKey             string        `env:"AUTHD_SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"AUTHD_TOKEN_VALIDITY"`
	PasswordHashCost      int           `env:"AUTHD_PASSWORD_HASH_COST"`
}

// parseEnv overlays AUTHD_* environment variables onto config. Invalid values
// panic, matching the JSON layer: silently ignoring a mistyped secret or
// duration would be worse than refusing to start.
func parseEnv(config *Config) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.EndpointAddr != "" {
		config.EndpointAddr = e.EndpointAddr
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.TokenValidityDuration != 0 {
		config.TokenValidityDuration = e.TokenValidityDuration
	}
	if e.PasswordHashCost != 0 {
		config.PasswordHashCost = e.PasswordHashCost
	}
}
