// Package config loads settings shared by the console API and tenantctl.
// Later layers win: built-in defaults, base.yaml, the profile file, any
// overlay files, then APP_* environment variables.
package config

import "time"

// Config is the fully merged configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Wizard    WizardConfig    `koanf:"wizard"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures calls to the tenant directory.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig throttles outbound requests. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// WizardConfig holds provisioning wizard session settings.
type WizardConfig struct {
	// SessionTTL is how long an idle session is kept before it is discarded.
	SessionTTL time.Duration `koanf:"session_ttl"`
	// SweepInterval is how often expired sessions are collected.
	SweepInterval time.Duration `koanf:"sweep_interval"`
	// CodeCheckDebounce is the quiet period before a subdomain
	// availability check is sent.
	CodeCheckDebounce time.Duration `koanf:"code_check_debounce"`
	// CodeCheckTimeout bounds a single availability call.
	CodeCheckTimeout time.Duration `koanf:"code_check_timeout"`
	// BaseDomain is the parent domain tenant subdomains live under.
	BaseDomain string `koanf:"base_domain"`
}
