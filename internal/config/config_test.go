package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", c.Server.Port)
	}
	if c.JWT.TTLMinutes != 60 || c.TokenTTL() != time.Hour {
		t.Errorf("ttl = %d minutes", c.JWT.TTLMinutes)
	}
	if c.JWT.Secret != "" {
		t.Errorf("secret has a default: %q", c.JWT.Secret)
	}
	if c.Database.Name != "taskmanager" {
		t.Errorf("db name = %q", c.Database.Name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 9000\ndatabase:\n  host: db.internal\n  name: tm_prod\njwt:\n  ttl_minutes: 15\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	c := Load(path)
	if c.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", c.Server.Port)
	}
	if c.Database.Host != "db.internal" || c.Database.Name != "tm_prod" {
		t.Errorf("database = %+v", c.Database)
	}
	if c.TokenTTL() != 15*time.Minute {
		t.Errorf("ttl = %v", c.TokenTTL())
	}
	if c.Addr() != ":9000" {
		t.Errorf("addr = %q", c.Addr())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database:\n  host: from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DB_HOST", "from-env")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "7001")

	c := Load(path)
	if c.Database.Host != "from-env" {
		t.Errorf("host = %q, want env to win", c.Database.Host)
	}
	if c.JWT.Secret != "s3cret" {
		t.Errorf("secret = %q", c.JWT.Secret)
	}
	if c.Server.Port != 7001 {
		t.Errorf("port = %d", c.Server.Port)
	}
}
