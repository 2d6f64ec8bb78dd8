package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the YAML configuration structure
type AppConfig struct {
	Version string        `yaml:"version"`
	General GeneralConfig `yaml:"general"`
	Output  OutputConfig  `yaml:"output"`
	Session SessionConfig `yaml:"session"`
}

// GeneralConfig holds general execution settings
type GeneralConfig struct {
	Timeout  int    `yaml:"timeout"`   // Per-remote-call timeout in seconds
	LogLevel string `yaml:"log_level"` // Log level: silent, normal, verbose, debug
	Progress bool   `yaml:"progress"`  // Progress line display
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	Directory string `yaml:"directory"` // Directory artifacts are written into
}

// SessionConfig holds the connection defaults stamped into every artifact
// row plus the settings of the session-file generator
type SessionConfig struct {
	User         string `yaml:"user"`          // Login user for all records
	Port         int    `yaml:"port"`          // Login port for all records
	Template     string `yaml:"template"`      // Session template file path
	Viewer       string `yaml:"viewer"`        // Command launched on a generated session file
	CleanupDelay int    `yaml:"cleanup_delay"` // Seconds before a generated session file is removed (0 = keep)
}

// getDefaultConfig returns the built-in configuration values
func getDefaultConfig() *AppConfig {
	return &AppConfig{
		Version: "1.0",
		General: GeneralConfig{
			Timeout:  30,
			LogLevel: "normal",
			Progress: true,
		},
		Output: OutputConfig{
			Directory: ".",
		},
		Session: SessionConfig{
			User:         "opc",
			Port:         22,
			Template:     "",
			Viewer:       "",
			CleanupDelay: 0,
		},
	}
}

// getConfigPaths returns configuration file search paths in priority order
func getConfigPaths() []string {
	paths := []string{}

	// 1. Environment variable
	if configFile := os.Getenv("OCI_SSH_INVENTORY_CONFIG_FILE"); configFile != "" {
		paths = append(paths, configFile)
	}

	// 2. Current directory
	paths = append(paths, "./oci-ssh-inventory.yaml")

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".oci-ssh-inventory.yaml"))
	}

	// 4. System directory
	paths = append(paths, "/etc/oci-ssh-inventory.yaml")

	return paths
}

// LoadConfig loads configuration from the first YAML file found, falling
// back to defaults when none exists
func LoadConfig() (*AppConfig, error) {
	config := getDefaultConfig()

	for _, path := range getConfigPaths() {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
			}
			break // Use first found configuration file
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *AppConfig) error {
	if _, err := ParseLogLevel(config.General.LogLevel); err != nil {
		return err
	}

	if config.General.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %d", config.General.Timeout)
	}

	if config.Output.Directory == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if config.Session.User == "" {
		return fmt.Errorf("session user must not be empty")
	}
	if config.Session.Port <= 0 || config.Session.Port > 65535 {
		return fmt.Errorf("session port must be in 1-65535, got: %d", config.Session.Port)
	}
	if config.Session.CleanupDelay < 0 {
		return fmt.Errorf("cleanup_delay must not be negative, got: %d", config.Session.CleanupDelay)
	}

	return nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(config *AppConfig, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GenerateDefaultConfigFile creates a default configuration file
func GenerateDefaultConfigFile(filename string) error {
	return SaveConfig(getDefaultConfig(), filename)
}

// MergeWithCLIArgs merges configuration file settings with CLI arguments.
// CLI arguments have higher priority than the configuration file.
func MergeWithCLIArgs(config *AppConfig, cliTimeout int, cliLogLevel, cliOutputDir string, cliNoProgress bool) {
	if cliTimeout > 0 {
		config.General.Timeout = cliTimeout
	}

	if cliLogLevel != "" {
		config.General.LogLevel = cliLogLevel
	}

	if cliOutputDir != "" {
		config.Output.Directory = cliOutputDir
	}

	if cliNoProgress {
		config.General.Progress = false
	}
}
