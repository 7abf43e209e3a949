package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"labelconductor/pkg/github"
	"labelconductor/pkg/logging"
)

var applyDryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply <owner/name>",
	Short: "Apply the label configuration to a repository",
	Long: `Apply every label category from the configuration file to a GitHub repository.

Each label is created; if creation fails (usually because the label already
exists) the existing label is updated with the configured color and description.
Categories and labels are applied in the order they appear in the file, and the
run stops at the first label that cannot be applied. Labels missing from the
configuration are never deleted.

Examples:
  labelconductor apply acme/widgets
  labelconductor --config-path labels.yaml apply acme/widgets
  labelconductor apply acme/widgets --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "List the labels that would be applied without calling GitHub")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := github.ParseRepository(args[0])
	if err != nil {
		return err
	}
	ctx = logging.WithField(ctx, "repository", repo.String())
	log := logging.FromContext(ctx)

	labels, err := loadLabelConfig(configPath)
	if err != nil {
		return err
	}
	log.Debug().
		Str("config", configPath).
		Int("categories", len(labels.Categories)).
		Int("labels", labels.LabelCount()).
		Msg("loaded config")

	if applyDryRun {
		for _, category := range labels.Categories {
			for _, label := range category.ResolvedLabels() {
				log.Info().
					Str("category", category.Prefix).
					Str("label", label.Name).
					Str("color", label.Color).
					Str("description", label.Description).
					Msg("would apply label")
			}
		}
		return nil
	}

	client, err := github.NewClient(github.ClientConfig{
		Token:   settings.GitHub.Token,
		BaseURL: settings.GitHub.APIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to set up GitHub client: %w (set GITHUB_TOKEN or GH_TOKEN)", err)
	}

	summary, err := github.NewReconciler(client, repo).ReconcileAll(ctx, labels.Categories)
	if err != nil {
		log.Warn().
			Int("applied", len(summary.Results)).
			Msg("stopped before all labels were applied")
		return err
	}

	log.Info().
		Int("categories", summary.Categories).
		Int("created", summary.Count(github.ApplyActionCreate)).
		Int("updated", summary.Count(github.ApplyActionUpdate)).
		Msg("labels applied")

	return nil
}

// loadLabelConfig loads and validates the label configuration file
func loadLabelConfig(path string) (*github.Configuration, error) {
	labels, err := github.LoadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := labels.Validate(); err != nil {
		return nil, &github.ConfigError{Path: path, Err: err}
	}
	return labels, nil
}
