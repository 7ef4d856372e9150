// Package config provides centralized configuration for the typetab
// command and preview server. Settings come from environment variables
// with sensible defaults and are validated on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Config holds all configuration for the command-line tool.
type Config struct {
	Server  ServerConfig
	Read    ReadConfig
	Export  ExportConfig
	Logging LoggingConfig
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// ReadConfig holds CSV reading defaults. Command-line flags override these.
type ReadConfig struct {
	// Delimiter is the field separator, a single character (default: ",")
	Delimiter string `env:"READ_DELIMITER" default:","`

	// NoHeader treats the first row as data; column names become "0".."n-1"
	NoHeader bool `env:"READ_NO_HEADER" default:"false"`

	// MaxFileSize is the maximum input file size in bytes (default: 100MB)
	MaxFileSize int64 `env:"READ_MAX_FILE_SIZE" default:"104857600"`
}

// ExportConfig holds Postgres export settings.
type ExportConfig struct {
	// DatabaseURL is the Postgres connection string. Required only when
	// exporting.
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// Table is the destination table name (default: typetab_import)
	Table string `env:"EXPORT_TABLE" default:"typetab_import"`

	// Timeout is the maximum duration for one export run (default: 10m)
	Timeout time.Duration `env:"EXPORT_TIMEOUT" default:"10m"`

	// LoadID tags exported rows with a per-run load_id (default: true)
	LoadID bool `env:"EXPORT_LOAD_ID" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *ReadConfig) DelimiterRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size == 0 || size != len(c.Delimiter) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return r, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if _, err := c.Read.DelimiterRune(); err != nil {
		errs = append(errs, "READ_DELIMITER: "+err.Error())
	}
	if c.Read.MaxFileSize <= 0 {
		errs = append(errs, "READ_MAX_FILE_SIZE must be positive")
	}
	if c.Export.Timeout <= 0 {
		errs = append(errs, "EXPORT_TIMEOUT must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
