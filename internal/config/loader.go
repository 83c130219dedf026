package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

// envVarPattern matches ${VAR} references inside config files.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Loader reads and validates engine configuration from YAML files,
// with ${VAR} environment variable interpolation and KE_* overrides.
type Loader struct {
	validator *Validator
}

// NewLoader creates a configuration loader.
func NewLoader() *Loader {
	return &Loader{validator: NewValidator()}
}

// Load reads the config file at path, interpolates environment variables,
// applies environment overrides, and validates the result.
func (l *Loader) Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.CONFIG_NOT_FOUND,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	return l.parse(raw)
}

// LoadWithDefaults behaves like Load but falls back to the default
// configuration when the file does not exist.
func (l *Loader) LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := l.validator.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return l.Load(path)
}

func (l *Loader) parse(raw []byte) (*Config, error) {
	interpolated := interpolateEnv(raw)

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("KE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(interpolated)); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to parse config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to decode config", err)
	}

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// interpolateEnv replaces ${VAR} references with the value of the
// environment variable VAR. Unset variables resolve to the empty string.
func interpolateEnv(raw []byte) []byte {
	return envVarPattern.ReplaceAllFunc(raw, func(match []byte) []byte {
		name := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)

	v.SetDefault("graph.uri", def.Graph.URI)
	v.SetDefault("graph.username", def.Graph.Username)
	v.SetDefault("graph.database", def.Graph.Database)
	v.SetDefault("graph.max_pool_size", def.Graph.MaxConnectionPoolSize)
	v.SetDefault("graph.connection_timeout", def.Graph.ConnectionTimeout)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}
