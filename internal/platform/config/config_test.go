package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sabalabor/internal/platform/config"
)

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("SABALABOR_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != config.DefaultAPIBaseURL || cfg.Timeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Store != config.StoreFile {
		t.Fatalf("expected file store default, got %s", cfg.Store)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "apiBaseURL: https://api.example.com\nstore: sqlite\ndataDir: " + dir + "\ntimeout: 3s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SABALABOR_STORE", "memory")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected file url, got %s", cfg.APIBaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Timeout)
	}
	if cfg.Store != config.StoreMemory {
		t.Fatalf("expected env override to memory, got %s", cfg.Store)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("explicit missing config should fail")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()
	base := config.Default()
	base.DataDir = t.TempDir()

	badURL := base
	badURL.APIBaseURL = "localhost"
	if err := badURL.Validate(); err == nil {
		t.Fatalf("url without scheme should fail")
	}
	badStore := base
	badStore.Store = "etcd"
	if err := badStore.Validate(); err == nil {
		t.Fatalf("unknown store should fail")
	}
	noRedis := base
	noRedis.Store = config.StoreRedis
	noRedis.RedisAddr = ""
	if err := noRedis.Validate(); err == nil {
		t.Fatalf("redis without address should fail")
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
}
