package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Invitation InvitationConfig `yaml:"invitation"`
	Email      EmailConfig      `yaml:"email"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// LockTimeout bounds row-lock waits; a timed-out lock surfaces as a
	// transient error.
	LockTimeout time.Duration `yaml:"lock_timeout" env:"DATABASE_LOCK_TIMEOUT" env-default:"5s"`
	// SkipMigrate turns off applying migrations at startup.
	SkipMigrate bool          `yaml:"skip_migrate" env:"DATABASE_SKIP_MIGRATE"`
}

// AuthConfig holds access token and password settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"kitchentory"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12"`
}

// InvitationConfig holds invitation lifetime and link settings.
type InvitationConfig struct {
	DefaultExpiryHours int `yaml:"default_expiry_hours" env:"INVITATION_DEFAULT_EXPIRY_HOURS" env-default:"72"`
	MaxExpiryHours     int `yaml:"max_expiry_hours"     env:"INVITATION_MAX_EXPIRY_HOURS"     env-default:"720"`
	// AcceptURL is the frontend page that receives ?token=. Empty disables
	// links in emails and responses.
	AcceptURL string `yaml:"accept_url" env:"INVITATION_ACCEPT_URL"`
}

// EmailConfig holds outbound mail settings. With no server token set,
// mail is logged instead of sent.
type EmailConfig struct {
	PostmarkToken string        `yaml:"postmark_token" env:"EMAIL_POSTMARK_TOKEN"`
	PostmarkURL   string        `yaml:"postmark_url"   env:"EMAIL_POSTMARK_URL"   env-default:"https://api.postmarkapp.com"`
	From          string        `yaml:"from"           env:"EMAIL_FROM"           env-default:"Kitchentory <no-reply@kitchentory.app>"`
	Timeout       time.Duration `yaml:"timeout"        env:"EMAIL_TIMEOUT"        env-default:"10s"`
}

// Enabled reports whether a delivery provider is configured.
func (c EmailConfig) Enabled() bool {
	return strings.TrimSpace(c.PostmarkToken) != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables a limit.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	APIPerMinute  int `yaml:"api_per_minute"  env:"RATE_LIMIT_API_PER_MINUTE"  env-default:"300"`
}
