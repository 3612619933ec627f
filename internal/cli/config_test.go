package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want default", cfg.ListenAddr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
listen_addr = ":9090"
redis_addr = "localhost:6379"
mongo_uri = "mongodb://localhost:27017"
mongo_database = "decks"
cache_dir = "/var/cache/cardframe"
max_iterations = 5
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "decks" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.CacheDir != "/var/cache/cardframe" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if cfg.MaxIterations != 5 {
		t.Errorf("MaxIterations = %d", cfg.MaxIterations)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`max_iterations = 2`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxIterations != 2 {
		t.Errorf("MaxIterations = %d", cfg.MaxIterations)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("unset ListenAddr should keep default, got %q", cfg.ListenAddr)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`listen_addr = [broken`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed toml should error")
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if path != filepath.Join("/tmp/xdg-config", appName, "config.toml") {
		t.Errorf("configPath = %s", path)
	}
}
