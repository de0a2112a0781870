package cmd

import (
	"github.com/creditlens/creditlens/core"
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/internal/dataset"
	"github.com/creditlens/creditlens/internal/outwriter"
	"github.com/creditlens/creditlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stressCmd runs the liquidity stress scenarios for one institution.
var stressCmd = &cobra.Command{
	Use:   "stress [institution]",
	Short: "Run liquidity stress scenarios for one institution.",
	Long: `Apply haircut scenarios to an institution's latest LCR and NSFR.

Four scenarios are evaluated, from a no-haircut baseline to a severe
stress that cuts the LCR nearly in half. A scenario passes when both
stressed ratios stay at or above the 100% regulatory floor.

The output also includes the liquidity profile behind the scenarios:
- Estimated liquidity runway in days
- Composition of the liquid asset buffer
- A monthly net cash flow projection

Examples:
  # Stress test a single institution
  creditlens stress "Morgan Stanley"

  # Extend the cash flow projection to two years
  creditlens stress citigroup --projection-months 24

  # Export scenario results as CSV
  creditlens stress schwab --output csv --output-file stress.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		name, err := resolveTargetInstitution()
		if err != nil {
			contract.LogFatal("Cannot run stress test", err)
		}

		data, err := dataset.NewGenerator(cfg.Years).FetchInstitution(rootCtx, name)
		if err != nil {
			contract.LogFatal("Cannot run stress test", err)
		}

		report, err := core.BuildReport(data, cfg)
		if err != nil {
			contract.LogFatal("Cannot run stress test", err)
		}

		months := viper.GetInt("projection-months")
		if months <= 0 {
			months = contract.DefaultProjectionMonths
		}

		lcr, _ := data.Latest(schema.MetricLCR)
		buffer := core.BufferComposition(lcr)
		cashflow := core.CashFlowProjection(months)

		if err := outwriter.NewOutWriter().WriteStress(report, buffer, cashflow, cfg); err != nil {
			contract.LogFatal("Cannot write stress results", err)
		}
	},
}
