package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultReminderWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"client.rate_limit.requests_per_second": 0,
		"client.rate_limit.burst_size":          1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "admin-notes-service",

		"notes.default_locale": "en_US",
		"notes.default_source": "system",
		"notes.timezone":       "UTC",

		"storage.driver":         "sqlite",
		"storage.path":           "data/notes.db",
		"storage.dsn":            "",
		"storage.busy_timeout":   "5s",
		"storage.max_open_conns": 0,

		"reminder.enabled":  true,
		"reminder.schedule": "@every 1m",
		"reminder.timeout":  "30s",
		"reminder.workers":  defaultReminderWorkers,
	}
}
