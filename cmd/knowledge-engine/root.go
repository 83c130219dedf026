package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mindlog-ai/knowledge-engine/internal/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "knowledge-engine",
	Short: "Natural-language query engine for a property graph",
	Long: `knowledge-engine answers Korean natural-language questions by
classifying them against an ordered pattern library, generating Cypher,
executing it against Neo4j, and formatting the rows into typed answers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"path to config file (default ~/.knowledge-engine/config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEngineConfig resolves the config path and loads the configuration,
// falling back to defaults when no file exists.
func loadEngineConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv("KE_CONFIG")
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.NewLoader().LoadWithDefaults(path)
}

// setupLogger builds the process logger from the logging config and installs
// it as the slog default.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
