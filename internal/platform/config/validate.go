package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRemote   = "remote"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
	drivers    = []string{DriverMemory, DriverSQLite, DriverPostgres, DriverRemote}
)

// Validate reports every invalid setting at once. Client settings are only
// checked when the remote store is selected.
func (c *Config) Validate() error {
	var p problems

	p.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(c.Server.ShutdownTimeout >= 0, "server.shutdown_timeout must not be negative")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		p.check(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	c.Notes.validate(&p)
	c.Storage.validate(&p)
	if c.Storage.Driver == DriverRemote {
		c.Client.validate(&p)
	}

	if c.Reminder.Enabled {
		p.check(strings.TrimSpace(c.Reminder.Schedule) != "", "reminder.schedule must not be empty when enabled")
		p.check(c.Reminder.Timeout > 0, "reminder.timeout must be positive")
		p.check(c.Reminder.Workers >= 1, "reminder.workers must be >= 1, got %d", c.Reminder.Workers)
	}

	return p.err()
}

func (n *NotesConfig) validate(p *problems) {
	p.check(strings.TrimSpace(n.DefaultLocale) != "", "notes.default_locale must not be empty")
	p.check(strings.TrimSpace(n.DefaultSource) != "", "notes.default_source must not be empty")
	if _, err := time.LoadLocation(n.Timezone); err != nil {
		p.add(fmt.Errorf("notes.timezone %q: %w", n.Timezone, err))
	}
	p.check(!slices.ContainsFunc(n.ExtraTypes, blank), "notes.extra_types must not contain empty values")
	p.check(!slices.ContainsFunc(n.ExtraStatuses, blank), "notes.extra_statuses must not contain empty values")
}

func (s *StorageConfig) validate(p *problems) {
	if !p.oneOf("storage.driver", s.Driver, drivers) {
		return
	}
	p.check(s.Driver != DriverSQLite || !blank(s.Path), "storage.path must not be empty when driver is sqlite")
	p.check(s.Driver != DriverPostgres || !blank(s.DSN), "storage.dsn must not be empty when driver is postgres")
	p.check(s.MaxOpenConns >= 0, "storage.max_open_conns must not be negative, got %d", s.MaxOpenConns)
	p.check(s.BusyTimeout >= 0, "storage.busy_timeout must not be negative")
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty when driver is remote")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize)
}

// problems accumulates validation failures.
type problems []error

func (p *problems) add(err error) {
	*p = append(*p, err)
}

// check records a failure when ok is false.
func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		p.add(fmt.Errorf(format, args...))
	}
}

// oneOf reports whether value is allowed, recording a failure if not.
func (p *problems) oneOf(key, value string, allowed []string) bool {
	if slices.Contains(allowed, value) {
		return true
	}
	p.add(fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), value))
	return false
}

func (p problems) err() error {
	return errors.Join(p...)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
