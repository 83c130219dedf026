package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindlog-ai/knowledge-engine/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			path = config.DefaultConfigPath()
		}

		if err := config.WriteDefault(path); err != nil {
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("config file already exists at %s", path)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Edit the graph section with your Neo4j credentials, then run 'knowledge-engine serve'.")
		return nil
	},
}
