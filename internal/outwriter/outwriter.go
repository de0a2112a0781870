// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a full credit report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.CreditReport, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, cfg, duration)
}

// WriteRankings prints ranked institution results using the configured output format.
func (ow *OutWriter) WriteRankings(reports []*schema.CreditReport, cfg *contract.Config, duration time.Duration) error {
	return WriteRankingResults(reports, cfg, duration)
}

// WriteRiskFactors prints the qualitative risk matrices using the configured output format.
func (ow *OutWriter) WriteRiskFactors(institution string, overview, liquidity []schema.RiskFactor, cfg *contract.Config) error {
	return WriteRiskFactorResults(institution, overview, liquidity, cfg)
}

// WriteStress prints stress scenarios and the liquidity profile using the configured output format.
func (ow *OutWriter) WriteStress(report *schema.CreditReport, buffer []schema.BufferComponent, cashflow []schema.CashFlowPoint, cfg *contract.Config) error {
	return WriteStressResults(report, buffer, cashflow, cfg)
}

// WriteMetrics prints the scoring model reference using the configured output format.
func (ow *OutWriter) WriteMetrics(model schema.ScoringConfig, weights map[schema.Category]float64, cfg *contract.Config) error {
	return WriteMetricsReference(model, weights, cfg)
}

// getMaxTableNameWidth calculates the maximum width for institution names in
// table output based on terminal width.
func getMaxTableNameWidth() int {
	// Get terminal width
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		termWidth = 80 // Conservative default for narrow terminals and CI
	}

	// Reserve space for the fixed columns with table formatting:
	// Rank + Type + Assets + four category scores + Overall + Rating.
	baseWidth := 58

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 40 {
		// Maximum name width to keep rows compact
		return 40
	}
	return available
}
