package cmd

import (
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/internal/dataset"
	"github.com/creditlens/creditlens/internal/outwriter"
	"github.com/spf13/cobra"
)

// rankingsCmd scores every institution and ranks them by overall score.
var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Score all institutions and rank them by overall credit quality.",
	Long: `Score every available institution and display a ranked comparison table.

Institutions are scored concurrently with a worker pool, then sorted by
weighted overall score from strongest to weakest. Ties break
alphabetically on the institution name for a stable ordering.

The table shows per-category scores, total assets, and the letter rating
for each institution, making it easy to:
- Compare peers across the four rating categories
- Spot outliers in a single category
- Track relative credit standing over time with analysis tracking

Examples:
  # Rank all institutions
  creditlens rankings

  # Rank using a longer history window
  creditlens rankings --years 10

  # Export rankings to CSV for a spreadsheet
  creditlens rankings --output csv --output-file rankings.csv

  # Record the run for trend tracking
  creditlens rankings --analysis-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		names := dataset.NewGenerator(cfg.Years).ListInstitutions()

		reports, elapsed, err := scoreInstitutions(names)
		if err != nil {
			contract.LogFatal("Cannot rank institutions", err)
		}

		if err := outwriter.NewOutWriter().WriteRankings(reports, cfg, elapsed); err != nil {
			contract.LogFatal("Cannot write rankings", err)
		}
	},
}
