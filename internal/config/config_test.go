package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Read.Delimiter != "," {
		t.Errorf("Read.Delimiter = %q, want %q", cfg.Read.Delimiter, ",")
	}
	if cfg.Read.MaxFileSize != 104857600 {
		t.Errorf("Read.MaxFileSize = %d", cfg.Read.MaxFileSize)
	}
	if cfg.Export.Table != "typetab_import" {
		t.Errorf("Export.Table = %q", cfg.Export.Table)
	}
	if !cfg.Export.LoadID {
		t.Error("Export.LoadID default = false, want true")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("READ_DELIMITER", ";")
	t.Setenv("READ_NO_HEADER", "true")
	t.Setenv("EXPORT_TIMEOUT", "1m")
	t.Setenv("DB_URL", "postgres://localhost/test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Read.Delimiter != ";" || !cfg.Read.NoHeader {
		t.Errorf("Read = %+v", cfg.Read)
	}
	if cfg.Export.Timeout != time.Minute {
		t.Errorf("Export.Timeout = %v, want 1m", cfg.Export.Timeout)
	}
	// DATABASE_URL falls back to the DB_URL alternate.
	if cfg.Export.DatabaseURL != "postgres://localhost/test" {
		t.Errorf("Export.DatabaseURL = %q", cfg.Export.DatabaseURL)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "bad port",
			env:     map[string]string{"SERVER_PORT": "70000"},
			wantErr: "SERVER_PORT",
		},
		{
			name:    "non-numeric port",
			env:     map[string]string{"SERVER_PORT": "abc"},
			wantErr: "SERVER_PORT",
		},
		{
			name:    "multi-character delimiter",
			env:     map[string]string{"READ_DELIMITER": ";;"},
			wantErr: "READ_DELIMITER",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad duration",
			env:     map[string]string{"EXPORT_TIMEOUT": "soon"},
			wantErr: "EXPORT_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("Load accepted invalid configuration")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	c := ServerConfig{Host: "0.0.0.0", Port: 9000}
	if got := c.Addr(); got != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", got)
	}
}

func TestDelimiterRune(t *testing.T) {
	c := ReadConfig{Delimiter: "\t"}
	r, err := c.DelimiterRune()
	if err != nil || r != '\t' {
		t.Errorf("DelimiterRune = %q, %v", r, err)
	}

	c.Delimiter = ""
	if _, err := c.DelimiterRune(); err == nil {
		t.Error("empty delimiter accepted")
	}
}
