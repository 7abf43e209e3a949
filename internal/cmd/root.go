package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"labelconductor/pkg/config"
	"labelconductor/pkg/logging"
)

var (
	configPath string
	logLevel   string
	verbose    bool

	// settings is populated before any subcommand runs
	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "labelconductor",
	Short: "Reconcile GitHub issue labels from a declarative configuration",
	Long: `Labelconductor keeps the issue labels of a GitHub repository in line with a
YAML file of label categories. Every category has a prefix and a color, and each
of its labels is created as "<prefix>-<suffix>" with the configured description.

Authentication uses the GITHUB_TOKEN (or GH_TOKEN) environment variable. A .env
file in the working directory is loaded if present.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logging.Default().Error().Err(err).Msg("labelconductor failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", config.DefaultLabelsPath, "Path to the label configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shortcut for --log-level debug")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(validateCmd)
}

// setupRun loads process settings and installs the logger on the command context
func setupRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	settings = cfg

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if logLevel != "" {
		level = logLevel
	}

	logger := logging.New(logging.Config{
		Level:   level,
		Format:  cfg.Log.Format,
		NoColor: cfg.Log.NoColor,
		Output:  cmd.ErrOrStderr(),
	})
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), &logger))

	return nil
}
