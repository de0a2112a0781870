package cmd

import (
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of the scoring model.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display metric definitions, thresholds, and weights for the scoring model",
	Long: `Show the formal definitions, thresholds, and weights behind every score.

Provides complete transparency into how institutions are rated, including:
- Category weights used for the overall score
- Per-metric weight within each category
- Excellent/good/fair/poor breakpoints for the piecewise scoring curve
- Direction of each metric (higher or lower is better)
- Informational metrics carried in reports but never scored

No scoring is performed - this is purely informational.

Use this to:
- Understand what each category measures
- Explain rating movements to your team
- Validate custom weight configurations
- Document the rating methodology

Examples:
  # Show the default scoring model
  creditlens metrics

  # View with custom weights from config file
  creditlens metrics --config .creditlens.yaml

  # Export the model reference as CSV
  creditlens metrics --output csv --output-file model.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteMetrics(cfg.ScoringModel, cfg.CategoryWeights, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
