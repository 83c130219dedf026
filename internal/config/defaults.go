package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mindlog-ai/knowledge-engine/internal/graph"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Graph: graph.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		LLM: LLMConfig{
			Provider: "",
		},
	}
}

// DefaultConfigPath returns the default config file location,
// ~/.knowledge-engine/config.yaml, falling back to the temporary directory
// when the user home cannot be determined.
func DefaultConfigPath() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".knowledge-engine", "config.yaml")
	}
	return filepath.Join(userHome, ".knowledge-engine", "config.yaml")
}

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return os.ErrExist
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
