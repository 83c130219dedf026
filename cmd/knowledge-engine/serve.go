package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mindlog-ai/knowledge-engine/internal/api"
	"github.com/mindlog-ai/knowledge-engine/internal/config"
	"github.com/mindlog-ai/knowledge-engine/internal/engine"
	"github.com/mindlog-ai/knowledge-engine/internal/graph"
	"github.com/mindlog-ai/knowledge-engine/internal/llm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadEngineConfig()
		if err != nil {
			return err
		}
		logger := setupLogger(cfg.Logging)

		ctx := cmd.Context()

		client, err := graph.NewNeo4jClient(cfg.Graph)
		if err != nil {
			return err
		}
		if err := client.Connect(ctx); err != nil {
			return err
		}
		defer client.Close(ctx)

		server := api.NewServer(cfg.Server, buildEngine(cfg, client, logger), client, logger)

		schema, err := graph.LoadSchema(ctx, client)
		if err != nil {
			logger.Warn("schema load failed, /api/v1/schema will be unavailable", "error", err)
		} else {
			server.SetSchema(schema)
			logger.Info("schema loaded",
				"labels", len(schema.Labels),
				"relationship_types", len(schema.RelationshipTypes))
		}

		return server.Start(ctx)
	},
}

// buildEngine assembles the engine with the optional LLM describer.
func buildEngine(cfg *config.Config, client graph.Client, logger *slog.Logger) *engine.Engine {
	opts := []engine.Option{engine.WithLogger(logger)}

	if cfg.LLM.Provider != "" {
		describer, err := llm.NewDescriber(cfg.LLM)
		if err != nil {
			logger.Warn("llm describer unavailable, using static descriptions", "error", err)
		} else {
			opts = append(opts, engine.WithDescriber(describer))
			logger.Info("llm describer enabled", "provider", describer.Provider())
		}
	}

	return engine.New(engine.DefaultLibrary(), client, opts...)
}
