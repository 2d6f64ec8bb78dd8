package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := getDefaultConfig()
	if err := validateConfig(config); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
	if config.Session.User != "opc" || config.Session.Port != 22 {
		t.Errorf("default session identity = %s:%d, want opc:22", config.Session.User, config.Session.Port)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppConfig)
	}{
		{"bad log level", func(c *AppConfig) { c.General.LogLevel = "loud" }},
		{"zero timeout", func(c *AppConfig) { c.General.Timeout = 0 }},
		{"empty output directory", func(c *AppConfig) { c.Output.Directory = "" }},
		{"empty user", func(c *AppConfig) { c.Session.User = "" }},
		{"port out of range", func(c *AppConfig) { c.Session.Port = 70000 }},
		{"negative cleanup delay", func(c *AppConfig) { c.Session.CleanupDelay = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getDefaultConfig()
			tt.modify(config)
			if err := validateConfig(config); err == nil {
				t.Error("validateConfig() = nil, want error")
			}
		})
	}
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`version: "1.0"
general:
  timeout: 60
  log_level: verbose
output:
  directory: /tmp/artifacts
session:
  user: ubuntu
  port: 2222
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("OCI_SSH_INVENTORY_CONFIG_FILE", path)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.General.Timeout != 60 {
		t.Errorf("timeout = %d, want 60", config.General.Timeout)
	}
	if config.General.LogLevel != "verbose" {
		t.Errorf("log level = %q, want verbose", config.General.LogLevel)
	}
	if config.Session.User != "ubuntu" || config.Session.Port != 2222 {
		t.Errorf("session identity = %s:%d, want ubuntu:2222", config.Session.User, config.Session.Port)
	}
	// Unset fields keep their defaults
	if !config.General.Progress {
		t.Error("progress default lost during file merge")
	}
}

func TestLoadConfigRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("general: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("OCI_SSH_INVENTORY_CONFIG_FILE", path)

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() = nil error for unparsable file")
	}
}

func TestMergeWithCLIArgs(t *testing.T) {
	config := getDefaultConfig()
	MergeWithCLIArgs(config, 120, "debug", "/srv/out", true)

	if config.General.Timeout != 120 {
		t.Errorf("timeout = %d, want 120", config.General.Timeout)
	}
	if config.General.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", config.General.LogLevel)
	}
	if config.Output.Directory != "/srv/out" {
		t.Errorf("output directory = %q, want /srv/out", config.Output.Directory)
	}
	if config.General.Progress {
		t.Error("progress should be disabled")
	}

	// Zero values leave the config untouched
	MergeWithCLIArgs(config, 0, "", "", false)
	if config.General.Timeout != 120 || config.General.LogLevel != "debug" {
		t.Error("empty CLI values must not reset merged settings")
	}
}
