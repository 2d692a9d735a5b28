package config

import "maps"

// defaults seeds every key, so env vars can override settings that no YAML
// file mentions.
func defaults() map[string]any {
	out := make(map[string]any)
	for _, section := range []map[string]any{
		serverDefaults(),
		{"log.level": "info", "log.format": "json"},
		directoryClientDefaults(),
		{"telemetry.enabled": false, "telemetry.exporter": "stdout", "telemetry.endpoint": ""},
		wizardDefaults(),
	} {
		maps.Copy(out, section)
	}
	return out
}

func serverDefaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          8080,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
	}
}

// directoryClientDefaults configure the client of the tenant directory.
// Tenant creation is only retried when it carries an idempotency key.
func directoryClientDefaults() map[string]any {
	return map[string]any{
		"client.base_url": "http://localhost:8081",
		"client.timeout":  "30s",

		"client.retry.max_attempts":     3,
		"client.retry.initial_interval": "100ms",
		"client.retry.max_interval":     "10s",
		"client.retry.multiplier":       2.0,

		"client.circuit_breaker.max_failures":    5,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": 1,

		"client.rate_limit.requests_per_second": 50,
		"client.rate_limit.burst_size":          10,
	}
}

func wizardDefaults() map[string]any {
	return map[string]any{
		"wizard.session_ttl":         "30m",
		"wizard.sweep_interval":      "1m",
		"wizard.code_check_debounce": "500ms",
		"wizard.code_check_timeout":  "5s",
		"wizard.base_domain":         "stocker.app",
	}
}
