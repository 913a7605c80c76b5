package config

import (
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKMASTER_SERVER_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UI.VimMode || !cfg.UI.NotifyDue {
		t.Errorf("UI defaults = %+v, want vim_mode and notify_due on", cfg.UI)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Server.URL != "" {
		t.Errorf("Server.URL = %q, want empty (client falls back to its default)", cfg.Server.URL)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKMASTER_SERVER_URL", "")

	cfg := DefaultConfig()
	cfg.Server.URL = "https://tasks.example.com/api"
	cfg.UI.NotifyDue = false
	cfg.Log.Level = "debug"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.URL != cfg.Server.URL {
		t.Errorf("Server.URL = %q, want %q", loaded.Server.URL, cfg.Server.URL)
	}
	if loaded.UI.NotifyDue {
		t.Error("UI.NotifyDue survived as true, want false")
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", loaded.Log.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Server.URL = "https://configured.example.com/api"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv("TASKMASTER_SERVER_URL", "https://override.example.com/api")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.URL != "https://override.example.com/api" {
		t.Errorf("Server.URL = %q, want the environment override", loaded.Server.URL)
	}
}
