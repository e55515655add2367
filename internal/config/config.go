package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
//
// Booleans that default to true carry no env-default tag: cleanenv applies
// tag defaults to any zero field, which would override an explicit false
// from YAML. Their defaults are set by newConfig instead.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Generator GeneratorConfig `yaml:"generator"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"2097152"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"5s"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"landing-builder"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	ResetTokenTTL    time.Duration `yaml:"reset_token_ttl"    env:"AUTH_RESET_TOKEN_TTL"    env-default:"1h"`
	ResetURL         string        `yaml:"reset_url"          env:"AUTH_RESET_URL"          env-default:"http://localhost:5173/reset-password"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// Generator providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderStub      = "stub"
)

// GeneratorConfig selects and tunes the content generator.
type GeneratorConfig struct {
	Provider   string        `yaml:"provider"    env:"GENERATOR_PROVIDER"    env-default:"anthropic"`
	APIKey     string        `yaml:"api_key"     env:"GENERATOR_API_KEY"`
	Model      string        `yaml:"model"       env:"GENERATOR_MODEL"       env-default:"claude-sonnet-4-5"`
	MaxTokens  int64         `yaml:"max_tokens"  env:"GENERATOR_MAX_TOKENS"  env-default:"8192"`
	Timeout    time.Duration `yaml:"timeout"     env:"GENERATOR_TIMEOUT"     env-default:"90s"`
	MaxRetries int           `yaml:"max_retries" env:"GENERATOR_MAX_RETRIES" env-default:"0"`
}

// CacheConfig holds the Redis public-site cache settings.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"CACHE_ENABLED"`
	Addr     string        `yaml:"addr"     env:"CACHE_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int           `yaml:"db"       env:"CACHE_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"10m"`
	Prefix   string        `yaml:"prefix"   env:"CACHE_PREFIX"   env-default:"public_site:"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP request limits for expensive routes.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"`
	AuthPerMinute     int           `yaml:"auth_per_minute"     env:"RATE_LIMIT_AUTH_PER_MINUTE"     env-default:"20"`
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"6"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// newConfig returns a Config holding the defaults of fields that cannot use
// env-default tags.
func newConfig() Config {
	var cfg Config
	cfg.Database.AutoMigrate = true
	cfg.Cache.Enabled = true
	cfg.RateLimit.Enabled = true
	return cfg
}
