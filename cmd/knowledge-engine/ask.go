package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindlog-ai/knowledge-engine/internal/graph"
)

var askDebug bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question and print the result as JSON",
	Args:  cobra.MinimumNArgs(1),
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

		eng := buildEngine(cfg, client, logger)

		answer := eng.Process(ctx, strings.Join(args, " "))
		if !askDebug {
			answer.Debug = nil
		}

		out, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askDebug, "debug", false, "include the generated Cypher in the output")
}
