package cmd

import (
	"github.com/spf13/cobra"

	"labelconductor/pkg/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the label configuration file",
	Long: `Validate the label configuration file without contacting GitHub.

Checks performed:
• YAML syntax and the required 'categories' key
• Non-empty prefixes and 6 digit hex colors
• Label names and descriptions within GitHub's length limits
• Duplicate label names across categories

Examples:
  labelconductor validate
  labelconductor --config-path labels.yaml validate`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	log := logging.FromContext(cmd.Context())

	labels, err := loadLabelConfig(configPath)
	if err != nil {
		return err
	}

	for _, category := range labels.Categories {
		for _, label := range category.ResolvedLabels() {
			log.Debug().Str("category", category.Prefix).Str("label", label.Name).Msg("label ok")
		}
	}

	log.Info().
		Str("config", configPath).
		Int("categories", len(labels.Categories)).
		Int("labels", labels.LabelCount()).
		Msg("configuration is valid")

	return nil
}
