package cmd

import (
	"github.com/creditlens/creditlens/core"
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/internal/dataset"
	"github.com/creditlens/creditlens/internal/outwriter"
	"github.com/spf13/cobra"
)

// riskCmd displays the qualitative risk factor matrices for one institution.
var riskCmd = &cobra.Command{
	Use:   "risk [institution]",
	Short: "Show the qualitative risk factor matrices for one institution.",
	Long: `Assess an institution's metric levels and trends against fixed thresholds.

Two matrices are produced:
- Overview: capital adequacy, non-performing loans, return on assets
  (level and trend), and liquidity coverage
- Liquidity: LCR level and trend, NSFR, loan-to-deposit, and cash ratio

Each factor is flagged Low, Medium, or High with a short explanation of
the threshold that triggered it. Trend deterioration is called out when
a metric has been moving the wrong way over the history window.

Use this to:
- Pinpoint which metrics drive a weak category score
- Watch for early deterioration before the rating moves
- Prepare credit committee talking points

Examples:
  # Risk matrices for a single bank
  creditlens risk "Bank of America"

  # Partial match with JSON output
  creditlens risk goldman --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		name, err := resolveTargetInstitution()
		if err != nil {
			contract.LogFatal("Cannot assess risk factors", err)
		}

		data, err := dataset.NewGenerator(cfg.Years).FetchInstitution(rootCtx, name)
		if err != nil {
			contract.LogFatal("Cannot assess risk factors", err)
		}

		overview := core.AssessRiskFactors(data)
		liquidity := core.AssessLiquidityRiskFactors(data)

		if err := outwriter.NewOutWriter().WriteRiskFactors(name, overview, liquidity, cfg); err != nil {
			contract.LogFatal("Cannot write risk factors", err)
		}
	},
}
