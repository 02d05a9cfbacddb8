// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Notes     NotesConfig     `koanf:"notes"`
	Storage   StorageConfig   `koanf:"storage"`
	Reminder  ReminderConfig  `koanf:"reminder"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// ShutdownTimeout bounds the drain of in-flight requests on stop.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the HTTP client used by the remote store.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
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

// RateLimitConfig holds outbound token bucket settings. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// NotesConfig holds note schema settings.
type NotesConfig struct {
	DefaultLocale string   `koanf:"default_locale"`
	DefaultSource string   `koanf:"default_source"`
	Timezone      string   `koanf:"timezone"`
	ExtraTypes    []string `koanf:"extra_types"`
	ExtraStatuses []string `koanf:"extra_statuses"`
}

// StorageConfig selects and configures the note store.
type StorageConfig struct {
	// Driver is one of "memory", "sqlite", "postgres" or "remote".
	Driver       string        `koanf:"driver"`
	Path         string        `koanf:"path"`
	DSN          string        `koanf:"dsn"`
	BusyTimeout  time.Duration `koanf:"busy_timeout"`
	MaxOpenConns int           `koanf:"max_open_conns"`
}

// ReminderConfig holds the un-snooze scheduler settings.
type ReminderConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Schedule string        `koanf:"schedule"`
	Timeout  time.Duration `koanf:"timeout"`
	Workers  int           `koanf:"workers"`
}
