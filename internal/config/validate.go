package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Invitation.validate(); err != nil {
		return fmt.Errorf("invitation: %w", err)
	}

	if c.Email.Enabled() && c.Email.From == "" {
		return fmt.Errorf("email.from is required when a postmark token is set")
	}

	if c.RateLimit.AuthPerMinute < 0 || c.RateLimit.APIPerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return nil
}

func (c *InvitationConfig) validate() error {
	if c.MaxExpiryHours <= 0 {
		return fmt.Errorf("max_expiry_hours must be > 0 (got %d)", c.MaxExpiryHours)
	}
	if c.DefaultExpiryHours <= 0 || c.DefaultExpiryHours > c.MaxExpiryHours {
		return fmt.Errorf("default_expiry_hours must be in [1, %d] (got %d)", c.MaxExpiryHours, c.DefaultExpiryHours)
	}
	if c.AcceptURL != "" {
		u, err := url.Parse(c.AcceptURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("accept_url must be an absolute URL (got %q)", c.AcceptURL)
		}
	}
	return nil
}
