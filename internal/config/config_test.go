package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DATABASE_URL", "RATE_RPS", "CORS_ALLOWED_ORIGINS", "APP_MIGRATE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.HTTPPort != "3001" || cfg.DBDriver != DriverPostgres || cfg.Env != "dev" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Migrate || cfg.RateRPS != 100 {
		t.Fatalf("unexpected defaults: migrate=%v rps=%d", cfg.Migrate, cfg.RateRPS)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("cors = %v", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("APP_MIGRATE", "false")
	t.Setenv("RATE_RPS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com ,")

	cfg := Load()
	if cfg.HTTPPort != "8080" || cfg.DBDriver != DriverSQLite || cfg.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Migrate || cfg.RateRPS != 0 {
		t.Fatalf("migrate=%v rps=%d", cfg.Migrate, cfg.RateRPS)
	}
	want := []string{"http://localhost:3000", "https://app.example.com"}
	if strings.Join(cfg.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Fatalf("cors = %v", cfg.CORSOrigins)
	}
	if got := cfg.MigrationURL(); got != "sqlite:///tmp/x.db" {
		t.Fatalf("MigrationURL = %q", got)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{HTTPPort: "http", DBDriver: "mysql", RateRPS: -1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"PORT", "DB_DRIVER", "RATE_RPS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}

	cfg = Config{HTTPPort: "70000", DBDriver: DriverPostgres, DBPort: "5432"}
	err = cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "between 1 and 65535") || !strings.Contains(err.Error(), "DB_HOST") {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (Config{HTTPPort: "3001", DBDriver: DriverMemory}).Validate(); err != nil {
		t.Fatalf("memory driver needs no settings: %v", err)
	}
}

func TestPostgresURL(t *testing.T) {
	cfg := Config{
		DBDriver:   DriverPostgres,
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBName:     "expense_tracker",
		DBSSLMode:  "disable",
	}
	want := "postgres://app:p%40ss%20word@db:5432/expense_tracker?sslmode=disable"
	if got := cfg.PostgresURL(); got != want {
		t.Fatalf("PostgresURL = %q, want %q", got, want)
	}
	if got := cfg.MigrationURL(); got != "pgx5"+strings.TrimPrefix(want, "postgres") {
		t.Fatalf("MigrationURL = %q", got)
	}

	cfg.DBPassword = ""
	if got := cfg.PostgresURL(); got != "postgres://app@db:5432/expense_tracker?sslmode=disable" {
		t.Fatalf("no password: %q", got)
	}

	cfg.DatabaseURL = "postgres://u:p@remote/db"
	if got := cfg.PostgresURL(); got != cfg.DatabaseURL {
		t.Fatalf("DATABASE_URL should win, got %q", got)
	}
	if (Config{DBDriver: DriverMemory}).MigrationURL() != "" {
		t.Fatalf("memory driver has no migration url")
	}
}
