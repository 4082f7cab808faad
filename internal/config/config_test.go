// internal/config/config_test.go
package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Fetch.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.Fetch.Retries != 5 {
		t.Errorf("expected retries 5, got %d", cfg.Fetch.Retries)
	}
	if cfg.Feedly.Count != 500 {
		t.Errorf("expected feedly count 500, got %d", cfg.Feedly.Count)
	}
}

func TestConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("FEEDSEEK_HOME", tmpDir)
	defer os.Unsetenv("FEEDSEEK_HOME")

	dir := Dir()
	if dir != tmpDir {
		t.Errorf("expected %s, got %s", tmpDir, dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("FEEDSEEK_HOME", tmpDir)
	defer os.Unsetenv("FEEDSEEK_HOME")

	cfg := Default()
	cfg.Discover.Spider = 2
	cfg.Discover.MaxLinks = 50

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Discover.Spider != 2 {
		t.Errorf("expected spider 2, got %d", loaded.Discover.Spider)
	}
	if loaded.Discover.MaxLinks != 50 {
		t.Errorf("expected max links 50, got %d", loaded.Discover.MaxLinks)
	}
}
