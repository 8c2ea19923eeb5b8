package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed for missing file: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("Expected default port 3001, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 || cfg.DB.SSLMode != "disable" {
		t.Errorf("Unexpected db defaults: %+v", cfg.DB)
	}
	if cfg.Baserow.TableID != 34 {
		t.Errorf("Expected default table id 34, got %d", cfg.Baserow.TableID)
	}
	if cfg.Auth.TokenExpireHours != 24 {
		t.Errorf("Expected default token expiry 24h, got %d", cfg.Auth.TokenExpireHours)
	}
	if len(cfg.Users) != 2 {
		t.Errorf("Expected 2 default users, got %d", len(cfg.Users))
	}
}

func TestLoadYAMLFile(t *testing.T) {
	content := `
server:
  port: 8080
log:
  level: debug
  format: json
db:
  host: db.internal
  name: weddings
baserow:
  token: yaml-token
  table_id: 99
users:
  - email: test@example.com
    password: secret
    name: Test User
    role: admin
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Writing config file failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Name != "weddings" {
		t.Errorf("Unexpected db config: %+v", cfg.DB)
	}
	if cfg.Baserow.Token != "yaml-token" || cfg.Baserow.TableID != 99 {
		t.Errorf("Unexpected baserow config: %+v", cfg.Baserow)
	}
	// Defaults still fill what the file omits
	if cfg.DB.Port != 5432 {
		t.Errorf("Expected default db port, got %d", cfg.DB.Port)
	}
	if len(cfg.Users) != 1 || cfg.Users[0].Email != "test@example.com" {
		t.Errorf("Unexpected users: %+v", cfg.Users)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("BASEROW_TOKEN", "env-token")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected env port 9090, got %d", cfg.Server.Port)
	}
	if cfg.DB.Host != "env-host" {
		t.Errorf("Expected env db host, got %s", cfg.DB.Host)
	}
	if cfg.Baserow.Token != "env-token" {
		t.Errorf("Expected env baserow token, got %s", cfg.Baserow.Token)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("Expected env jwt secret, got %s", cfg.Auth.JWTSecret)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("Writing config file failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for invalid YAML")
	}
}

func TestFindUser(t *testing.T) {
	cfg := &Config{Users: []User{
		{Email: "a@example.com", Role: "admin"},
		{Email: "b@example.com", Role: "editor"},
	}}

	if u := cfg.FindUser("b@example.com"); u == nil || u.Role != "editor" {
		t.Errorf("FindUser returned %+v", u)
	}
	if u := cfg.FindUser("nobody@example.com"); u != nil {
		t.Errorf("Expected nil for unknown email, got %+v", u)
	}
}
