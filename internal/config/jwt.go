package config

import (
	"fmt"
	"os"
	"time"
)

// minJWTSecretLen is the shortest HS256 secret accepted.
const minJWTSecretLen = 32

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_TTL (default: 24h) and JWT_ISSUER
// (default: jobz).
func NewJWTConfig() (*JWTConfig, error) {
	ttl, err := getEnvDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	config := &JWTConfig{
		Secret: os.Getenv("JWT_SECRET"),
		TTL:    ttl,
		Issuer: getEnv("JWT_ISSUER", "jobz"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(c.Secret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes, got: %d", minJWTSecretLen, len(c.Secret))
	}
	if c.TTL < time.Minute {
		return fmt.Errorf("JWT_TTL must be at least 1m, got: %s", c.TTL)
	}
	return nil
}
