package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for the admin password check.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
	AdminHash  string // bcrypt hash of the admin password
}

// NewPasswordConfig creates a new password configuration from environment
// variables. It reads BCRYPT_COST (default: 12), PASSWORD_PEPPER and
// ADMIN_PASSWORD_HASH. An empty admin hash disables admin login.
func NewPasswordConfig() (*PasswordConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
		AdminHash:  strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	if c.AdminHash != "" {
		if _, err := bcrypt.Cost([]byte(c.AdminHash)); err != nil {
			return fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
		}
	}
	return nil
}

// AdminEnabled reports whether an admin password hash is configured.
func (c *PasswordConfig) AdminEnabled() bool {
	return c.AdminHash != ""
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.pepper(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.pepper(pw))) == nil
}

// VerifyAdmin checks pw against the configured admin hash.
func (c *PasswordConfig) VerifyAdmin(pw string) bool {
	if !c.AdminEnabled() {
		return false
	}
	return c.VerifyPassword(pw, c.AdminHash)
}

func (c *PasswordConfig) pepper(pw string) string {
	return pw + c.Pepper
}
