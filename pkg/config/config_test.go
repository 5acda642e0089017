package config

import "testing"

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "planner",
		Password: "pw",
		Database: "planning",
		SSLMode:  "disable",
	}
	want := "host=db.internal port=5433 user=planner password=pw dbname=planning sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.HTTPPort != 8080 {
		t.Fatalf("default http port = %d", cfg.Server.HTTPPort)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("default driver = %q", cfg.Database.Driver)
	}
	if cfg.Storage.Dir == "" {
		t.Fatal("default storage dir is empty")
	}
}
