package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"labelconductor/pkg/github"
	"labelconductor/pkg/logging"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter label configuration",
	Long:  "Create an example label configuration file at --config-path",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", configPath)
	}

	if err := github.ExampleConfiguration().SaveConfigToPath(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logging.FromContext(cmd.Context()).Info().Str("config", configPath).Msg("configuration file created")
	return nil
}
