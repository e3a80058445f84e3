// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for mvctl configuration.
	DefaultConfigDir = ".mvctl"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"

	// DefaultEndpoint is the default Milvus gRPC endpoint.
	DefaultEndpoint = "localhost:19530"
	// DefaultTimeoutSeconds bounds connection establishment.
	DefaultTimeoutSeconds = 10
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Milvus MilvusConfig `yaml:"milvus,omitempty"`
}

// MilvusConfig holds configuration for the Milvus service.
type MilvusConfig struct {
	Endpoint       string `yaml:"endpoint,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Milvus: MilvusConfig{
			Endpoint:       DefaultEndpoint,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Load loads configuration from the .mvctl directory in the given path.
// A missing config file is not an error; defaults apply.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	cfg := Default()

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if endpoint := os.Getenv("MILVUS_ENDPOINT"); endpoint != "" {
		c.Milvus.Endpoint = endpoint
	}
}

// ConfigDir returns the path to the .mvctl config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
