package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./gymtrack.db" {
			t.Errorf("expected database path ./gymtrack.db, got %s", config.Database.Path)
		}

		if config.Backup.Directory != "." {
			t.Errorf("expected backup directory ., got %s", config.Backup.Directory)
		}

		if config.App.Language != "en" {
			t.Errorf("expected language en, got %s", config.App.Language)
		}

		if config.App.LogLevel != "info" {
			t.Errorf("expected log level info, got %s", config.App.LogLevel)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[database]
path = "/tmp/custom.db"
max_open_conns = 20

[backup]
directory = "/tmp/backups"

[app]
language = "es"
log_level = "debug"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/tmp/custom.db" {
			t.Errorf("expected custom database path, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected 20 max open conns, got %d", config.Database.MaxOpenConns)
		}
		if config.Backup.Directory != "/tmp/backups" {
			t.Errorf("expected custom backup directory, got %s", config.Backup.Directory)
		}
		if config.App.Language != "es" {
			t.Errorf("expected language es, got %s", config.App.Language)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfig invalid toml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.toml")
		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}
