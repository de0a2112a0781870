package cmd

import (
	"errors"
	"time"

	"github.com/creditlens/creditlens/core"
	"github.com/creditlens/creditlens/internal/commentary"
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/internal/dataset"
	"github.com/creditlens/creditlens/internal/outwriter"
	"github.com/creditlens/creditlens/internal/runstore"
	"github.com/creditlens/creditlens/schema"
	"github.com/spf13/cobra"
)

// scoreInstitutions resolves names, runs the scoring pipeline, and returns
// the ranked reports along with the elapsed wall time. It is shared by the
// score and rankings commands.
func scoreInstitutions(names []string) ([]*schema.CreditReport, time.Duration, error) {
	source := dataset.NewGenerator(cfg.Years)

	summ, err := commentary.NewSummarizer(rootCtx, cfg)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	reports, err := core.ExecuteScoring(rootCtx, cfg, source, runstore.Manager, summ, names)
	if err != nil {
		return nil, 0, err
	}
	return reports, time.Since(start), nil
}

// resolveTargetInstitution maps the positional argument to a canonical
// institution name, or fails when no argument was given.
func resolveTargetInstitution() (string, error) {
	if cfg.Institution == "" {
		return "", errors.New("an institution name is required")
	}
	return dataset.NewGenerator(cfg.Years).Resolve(cfg.Institution)
}

// scoreCmd produces a full credit report for one institution.
var scoreCmd = &cobra.Command{
	Use:   "score [institution]",
	Short: "Produce a full credit report for one institution.",
	Long: `Score a single institution across all four rating categories.

The report covers:
- Category scores for capitalization, asset quality, profitability, liquidity
- Per-metric score breakdown within each category
- Weighted overall score, category mean, and letter rating
- Management quality, risk heuristics, and funding diversification
- Liquidity stress scenarios with runway estimate
- Narrative commentary from the configured summarizer

Institution names are matched case-insensitively, so partial names like
'schwab' or 'morgan stanley' work as long as they are unambiguous.

Examples:
  # Score a bank with default settings
  creditlens score "JPMorgan Chase"

  # Partial name match with two-decimal precision
  creditlens score schwab --precision 2

  # Export the report as JSON
  creditlens score citigroup --output json --output-file citi.json

  # Score with AI-generated commentary
  creditlens score wells --summarizer openai`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		name, err := resolveTargetInstitution()
		if err != nil {
			contract.LogFatal("Cannot score institution", err)
		}

		reports, elapsed, err := scoreInstitutions([]string{name})
		if err != nil {
			contract.LogFatal("Cannot score institution", err)
		}

		if err := outwriter.NewOutWriter().WriteReport(reports[0], cfg, elapsed); err != nil {
			contract.LogFatal("Cannot write credit report", err)
		}
	},
}
