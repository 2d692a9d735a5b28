package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// Validate reports every invalid setting at once, each prefixed with its
// dotted key.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Wizard.validate(&p)
	return p.err()
}

// problems accumulates validation failures.
type problems []error

func (p *problems) check(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s "+format, append([]any{key}, args...)...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), key, "must be one of %v, got %q", allowed, got)
}

func (p problems) err() error { return errors.Join(p...) }

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (cl *ClientConfig) validate(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https"),
		"client.base_url", "must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.check(cl.Timeout > 0, "client.timeout", "must be positive")

	r := cl.Retry
	p.check(r.MaxAttempts >= 1, "client.retry.max_attempts", "must be >= 1, got %d", r.MaxAttempts)
	p.check(r.Multiplier > 0, "client.retry.multiplier", "must be positive, got %g", r.Multiplier)
	p.check(r.MaxInterval >= r.InitialInterval, "client.retry.max_interval",
		"must not be below initial_interval (%s)", r.InitialInterval)

	p.check(cl.CircuitBreaker.MaxFailures >= 1, "client.circuit_breaker.max_failures",
		"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second",
		"must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1, "client.rate_limit.burst_size",
		"must be >= 1 when rate limiting is enabled, got %d", rl.BurstSize)
}

// Telemetry settings are only checked when telemetry is enabled.
func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
}

func (w *WizardConfig) validate(p *problems) {
	p.check(w.SessionTTL > 0, "wizard.session_ttl", "must be positive")
	p.check(w.SweepInterval > 0, "wizard.sweep_interval", "must be positive")
	p.check(w.CodeCheckDebounce >= 0, "wizard.code_check_debounce", "must not be negative")
	p.check(w.CodeCheckTimeout > 0, "wizard.code_check_timeout", "must be positive")
	p.check(w.BaseDomain != "", "wizard.base_domain", "must not be empty")
}
