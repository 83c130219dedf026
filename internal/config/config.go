package config

import (
	"time"

	"github.com/mindlog-ai/knowledge-engine/internal/graph"
)

// Config is the root configuration for the knowledge engine.
type Config struct {
	Server  ServerConfig `mapstructure:"server" yaml:"server" validate:"required"`
	Graph   graph.Config `mapstructure:"graph" yaml:"graph" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	LLM     LLMConfig     `mapstructure:"llm" yaml:"llm"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host" yaml:"host"`
	Port         int           `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// LLMConfig contains the optional LLM provider used for advanced analysis
// of unclassified questions. An empty provider disables the hook entirely.
type LLMConfig struct {
	Provider string `mapstructure:"provider" yaml:"provider"`
	Model    string `mapstructure:"model" yaml:"model"`
	APIKey   string `mapstructure:"api_key" yaml:"api_key"`
}
