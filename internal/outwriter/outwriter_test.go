package outwriter

import (
	"testing"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/assert"
)

// testCfg returns a plain-text table config used across the output tests.
func testCfg() *contract.Config {
	return &contract.Config{
		Precision:       1,
		Output:          schema.TableOut,
		UseColors:       false,
		Workers:         4,
		AnalysisBackend: schema.NoneBackend,
		CategoryWeights: schema.GetDefaultCategoryWeights(),
	}
}

// testReport builds a mid-grade report with all four categories populated.
func testReport() *schema.CreditReport {
	return &schema.CreditReport{
		Institution: "JPMorgan Chase & Co.",
		Type:        "Bank",
		TotalAssets: 3200000,
		Year:        2026,
		Categories: map[schema.Category]schema.CategoryResult{
			schema.Capitalization: {
				Score: 8.2,
				Breakdown: map[schema.MetricKey]float64{
					schema.MetricCapitalAdequacy: 8.5,
					schema.MetricTier1:           8.0,
					schema.MetricLeverage:        8.1,
				},
			},
			schema.AssetQuality: {
				Score: 7.1,
				Breakdown: map[schema.MetricKey]float64{
					schema.MetricNPL:      7.0,
					schema.MetricCoverage: 7.3,
				},
			},
			schema.Profitability: {
				Score: 6.9,
				Breakdown: map[schema.MetricKey]float64{
					schema.MetricROA: 6.8,
					schema.MetricROE: 7.0,
				},
			},
			schema.Liquidity: {
				Score: 7.8,
				Breakdown: map[schema.MetricKey]float64{
					schema.MetricLCR:  7.9,
					schema.MetricNSFR: 7.7,
				},
			},
		},
		Overall:                7.6,
		Mean:                   7.5,
		Rating:                 schema.RatingBands[1],
		Management:             schema.ManagementAssessment{Score: 8.0, Rating: "Strong", Description: "Consistent financial management"},
		LiquidityRisk:          4.0,
		AssetQualityRisk:       3.5,
		FundingDiversification: 7.0,
		RunwayDays:             120,
		Stress: []schema.StressResult{
			{Scenario: "Baseline", LCRFactor: 1.0, NSFRFactor: 1.0, LCR: 125, NSFR: 115, Pass: true},
			{Scenario: "Severe Stress", LCRFactor: 0.55, NSFRFactor: 0.70, LCR: 68.75, NSFR: 80.5, Pass: false},
		},
		Commentary: "JPMorgan Chase & Co. shows solid financial performance.",
	}
}

func TestGetMaxTableNameWidth(t *testing.T) {
	// Tests rarely run with a terminal attached, so the conservative
	// fallback applies. Either way the clamp bounds must hold.
	width := getMaxTableNameWidth()
	assert.GreaterOrEqual(t, width, 15)
	assert.LessOrEqual(t, width, 40)
}

func TestOutWriterDispatch(t *testing.T) {
	// The facade should route every writer through the same dispatcher
	// without error on the default table output.
	ow := NewOutWriter()
	cfg := testCfg()
	report := testReport()

	assert.NoError(t, ow.WriteReport(report, cfg, 0))
	assert.NoError(t, ow.WriteRankings([]*schema.CreditReport{report}, cfg, 0))
	assert.NoError(t, ow.WriteRiskFactors(report.Institution, nil, nil, cfg))
	assert.NoError(t, ow.WriteStress(report, nil, nil, cfg))
	assert.NoError(t, ow.WriteMetrics(schema.GetDefaultScoringConfig(), cfg.CategoryWeights, cfg))
}
