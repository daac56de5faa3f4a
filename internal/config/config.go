// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds everything the server needs at startup
type Config struct {
	Port          string `yaml:"port"`
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
	CORSOrigins   string `yaml:"cors_origins"`
}

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// Load reads the YAML file named by VULNMGT_CONFIG (if set and present) and
// then applies env var overrides on top. Missing file is not an error; the
// defaults are complete enough for local development.
func Load() (Config, error) {
	cfg := Config{
		Port:          "4000",
		JWTSecret:     "your-secret-key",
		TokenTTLHours: 24,
		CORSOrigins:   "http://localhost:3000,http://localhost:5173",
	}

	if path := os.Getenv("VULNMGT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Port = GetEnvDefault("PORT", cfg.Port)
	cfg.JWTSecret = GetEnvDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.CORSOrigins = GetEnvDefault("CORS_ORIGINS", cfg.CORSOrigins)
	if ttl := os.Getenv("TOKEN_TTL_HOURS"); ttl != "" {
		hours, err := strconv.Atoi(ttl)
		if err != nil || hours <= 0 {
			return cfg, fmt.Errorf("invalid TOKEN_TTL_HOURS %q", ttl)
		}
		cfg.TokenTTLHours = hours
	}

	return cfg, nil
}
