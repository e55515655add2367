package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.Auth.ResetTokenTTL <= 0 {
		return errors.New("auth.reset_token_ttl must be positive")
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return errors.New("cache.addr is required when the cache is enabled")
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive (got %s)", c.Cache.TTL)
		}
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.GeneratePerMinute <= 0 {
			return errors.New("rate_limit: per-minute limits must be positive")
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be positive (got %s)", c.RateLimit.CleanupInterval)
		}
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))

	switch g.Provider {
	case ProviderAnthropic:
		if g.APIKey == "" {
			return errors.New("api_key is required for the anthropic provider")
		}
		if g.Model == "" {
			return errors.New("model is required")
		}
	case ProviderStub:
	default:
		return fmt.Errorf("unknown provider %q", g.Provider)
	}

	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive (got %d)", g.MaxTokens)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive (got %s)", g.Timeout)
	}
	if g.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", g.MaxRetries)
	}
	return nil
}
