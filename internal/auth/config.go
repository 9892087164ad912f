package auth

import (
	"fmt"
	"time"

	"performance-backend/internal/config"
)

// AuthConfig holds token settings shared with the upstream identity provider
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
	StateTTL  time.Duration
}

// NewAuthConfig derives the auth configuration from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  time.Hour,
		StateTTL:  10 * time.Minute,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}
	return nil
}
