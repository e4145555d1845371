package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for key, value := range map[string]string{
		"QNA_PRIMARY.ENV":                 "local",
		"QNA_SERVER.PORT":                 "8080",
		"QNA_SERVER.READ_TIMEOUT":         "30",
		"QNA_SERVER.WRITE_TIMEOUT":        "30",
		"QNA_SERVER.IDLE_TIMEOUT":         "60",
		"QNA_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"QNA_DATABASE.HOST":               "localhost",
		"QNA_DATABASE.PORT":               "5432",
		"QNA_DATABASE.USER":               "postgres",
		"QNA_DATABASE.PASSWORD":           "postgres",
		"QNA_DATABASE.NAME":               "qna",
		"QNA_DATABASE.SSL_MODE":           "disable",
		"QNA_DATABASE.MAX_OPEN_CONNS":     "25",
		"QNA_DATABASE.MAX_IDLE_CONNS":     "5",
		"QNA_DATABASE.CONN_MAX_LIFETIME":  "300",
		"QNA_DATABASE.CONN_MAX_IDLE_TIME": "60",
	} {
		t.Setenv(key, value)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Primary.Env != "local" {
		t.Errorf("Primary.Env = %q", cfg.Primary.Env)
	}
	if cfg.Database.Port != 5432 || cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if got := cfg.Database.MaxLifetime(); got != 5*time.Minute {
		t.Errorf("MaxLifetime() = %s", got)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.Server.CORSAllowedOrigins)
	}

	if cfg.Observability == nil {
		t.Fatalf("expected default observability config")
	}
	if cfg.Observability.ServiceName != "qna" || cfg.Observability.Environment != "local" {
		t.Errorf("observability = %q/%q", cfg.Observability.ServiceName, cfg.Observability.Environment)
	}
	if checks := cfg.Observability.HealthChecks.Checks; len(checks) != 1 || checks[0] != "database" {
		t.Errorf("HealthChecks.Checks = %v", checks)
	}
}

func TestLoadConfigMissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("QNA_DATABASE.HOST", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected validation error for empty database host")
	}
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown level")
	}

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative threshold")
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		env, level, want string
	}{
		{"production", "", "info"},
		{"development", "", "debug"},
		{"production", "warn", "warn"},
		{"local", "error", "error"},
	}

	for _, tt := range tests {
		cfg := &ObservabilityConfig{Environment: tt.env, Logging: LoggingConfig{Level: tt.level}}
		if got := cfg.GetLogLevel(); got != tt.want {
			t.Errorf("GetLogLevel(%s, %q) = %q, want %q", tt.env, tt.level, got, tt.want)
		}
	}
}
