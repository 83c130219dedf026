package graph

import (
	"context"
	"time"

	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

// Client provides an interface for executing Cypher queries against a graph
// database. Implementations must be safe for concurrent use.
type Client interface {
	// Connect establishes a connection to the graph database.
	Connect(ctx context.Context) error

	// Close releases all resources and closes the database connection.
	Close(ctx context.Context) error

	// Health returns the current health status of the graph connection.
	Health(ctx context.Context) types.HealthStatus

	// Query executes a Cypher query with the given parameters and returns
	// the result rows. Zero rows is a successful outcome, not an error.
	Query(ctx context.Context, cypher string, params map[string]any) (Result, error)
}

// Result represents the rows returned by a Cypher query.
// Temporal values are normalized to ISO-8601 strings before rows leave the
// client, so downstream consumers never see driver-specific date types.
type Result struct {
	// Records contains the result rows as maps of column name to value.
	Records []map[string]any

	// Columns contains the names of the columns in the result set.
	Columns []string

	// ExecutionTime is the duration of query execution.
	ExecutionTime time.Duration
}

// Config contains configuration options for graph database clients.
type Config struct {
	// URI is the connection URI for the graph database.
	// For Neo4j, use:
	//   - "bolt://host:port" for unencrypted connections
	//   - "neo4j+s://host:port" for TLS-encrypted routing (AuraDB)
	URI string `mapstructure:"uri" yaml:"uri" validate:"required"`

	// Username for authentication.
	Username string `mapstructure:"username" yaml:"username" validate:"required"`

	// Password for authentication.
	Password string `mapstructure:"password" yaml:"password" validate:"required"`

	// Database name to connect to. Empty string uses the default database.
	Database string `mapstructure:"database" yaml:"database"`

	// MaxConnectionPoolSize limits the number of connections in the pool.
	// Zero or negative values use the driver default.
	MaxConnectionPoolSize int `mapstructure:"max_pool_size" yaml:"max_pool_size"`

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout"`
}

// DefaultConfig returns a Config with sensible defaults for a local Neo4j.
func DefaultConfig() Config {
	return Config{
		URI:                   "bolt://localhost:7687",
		Username:              "neo4j",
		Password:              "password",
		Database:              "",
		MaxConnectionPoolSize: 50,
		ConnectionTimeout:     30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.URI == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(ErrCodeGraphInvalidConfig, "ConnectionTimeout must be positive")
	}
	return nil
}
