package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password length bounds. bcrypt ignores input past 72 bytes, so the pepper
// has to fit inside that together with the password.
const (
	MinPasswordLen = 8
	MaxPasswordLen = 64
	maxBcryptInput = 72
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// NewPasswordConfig creates a new password configuration from environment variables.
// It reads BCRYPT_COST (default: 12) and optionally PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := getEnvInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	config := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     getEnv("PASSWORD_PEPPER", ""),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	if MaxPasswordLen+len(c.Pepper) > maxBcryptInput {
		return fmt.Errorf("PASSWORD_PEPPER too long: %d bytes (max %d)", len(c.Pepper), maxBcryptInput-MaxPasswordLen)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
