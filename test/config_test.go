package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maxviazov/article-catalog-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	// Minimal YAML; secrets will come from ENV
	yaml := `
app:
  name: article-catalog-service
  port: 18080

logger:
  level: info
  format: json
  env: prod

postgres:
  host: 127.0.0.1
  port: 5432
  ssl_mode: disable
  max_conns: 5
  min_conns: 1
  max_conn_lifetime: 60
  max_conn_idle_time: 30
  health_check_period: 15

pagination:
  default_limit: 10
`
	path := writeTempConfig(t, yaml)

	// Provide required secrets via ENV using the canonical APP_* names
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB_NAME", "testdb")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Port != 18080 {
		t.Fatalf("expected app.port 18080, got %d", cfg.App.Port)
	}
	if cfg.Postgres.User != "testuser" || cfg.Postgres.Password != "testpass" || cfg.Postgres.DBName != "testdb" {
		t.Fatalf("env overrides not applied: got user=%q pass=%q db=%q", cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DBName)
	}
	if cfg.Postgres.Host != "127.0.0.1" || cfg.Postgres.Port != 5432 || cfg.Postgres.SSLMode != "disable" {
		t.Fatalf("yaml values not loaded as expected: host=%q port=%d ssl_mode=%q", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.SSLMode)
	}
	if cfg.Pagination.DefaultLimit != 10 {
		t.Fatalf("expected pagination.default_limit 10, got %d", cfg.Pagination.DefaultLimit)
	}
}

func TestConfigLoad_DefaultLimitFallback(t *testing.T) {
	yaml := `
app:
  port: 18080

logger:
  level: info
`
	path := writeTempConfig(t, yaml)

	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB_NAME", "testdb")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pagination.DefaultLimit != 25 {
		t.Fatalf("expected default limit 25, got %d", cfg.Pagination.DefaultLimit)
	}
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	yaml := `
app:
  name: abc
  port: 18080

logger:
  level: info

postgres:
  host: localhost
  port: 5432
  ssl_mode: disable
`
	path := writeTempConfig(t, yaml)

	// Ensure secrets are not set
	t.Setenv("APP_POSTGRES_USER", "")
	t.Setenv("APP_POSTGRES_PASSWORD", "")
	t.Setenv("APP_POSTGRES_DB_NAME", "")

	_, err := config.Load(path)
	if err == nil {
		t.Fatalf("expected error when required env are missing, got nil")
	}
}
