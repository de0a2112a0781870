package core

import (
	"github.com/creditlens/creditlens/schema"
)

// Management rating thresholds and descriptions.
var managementRatings = []struct {
	min         float64
	rating      string
	description string
}{
	{8.0, "Strong", "Excellent strategic planning and execution"},
	{6.5, "Satisfactory", "Good management with consistent performance"},
	{5.0, "Fair", "Adequate management with some concerns"},
	{0, "Weak", "Management effectiveness needs improvement"},
}

// ManagementQualityScore rates management quality from performance
// consistency and trends across the historical series. Starts from a
// neutral 5.0 and adjusts for capital consistency, asset quality trend,
// profitability stability and liquidity management.
func ManagementQualityScore(d *schema.InstitutionData) float64 {
	score := 5.0

	// Capital consistency (CAR volatility)
	carStd := stddev(d.Series(schema.MetricCapitalAdequacy))
	if carStd < 1.0 {
		score += 1.0
	} else if carStd > 2.0 {
		score -= 1.0
	}

	// Asset quality trend (improving NPL is good)
	nplTrend := trend(d.Series(schema.MetricNPL))
	if nplTrend < -0.5 {
		score += 1.5
	} else if nplTrend > 0.5 {
		score -= 1.5
	}

	// Profitability consistency (ROA volatility)
	roaStd := stddev(d.Series(schema.MetricROA))
	if roaStd < 0.2 {
		score += 1.0
	} else if roaStd > 0.5 {
		score -= 1.0
	}

	// Liquidity management (LCR above regulatory minimum)
	avgLCR := mean(d.Series(schema.MetricLCR))
	if avgLCR > 120 {
		score += 0.5
	} else if avgLCR < 105 {
		score -= 1.0
	}

	return clampScore(score)
}

// AssessManagement wraps ManagementQualityScore with its qualitative rating.
func AssessManagement(d *schema.InstitutionData) schema.ManagementAssessment {
	score := ManagementQualityScore(d)
	for _, r := range managementRatings {
		if score >= r.min {
			return schema.ManagementAssessment{Score: score, Rating: r.rating, Description: r.description}
		}
	}
	last := managementRatings[len(managementRatings)-1]
	return schema.ManagementAssessment{Score: score, Rating: last.rating, Description: last.description}
}

// AssetQualityRiskScore rates asset quality risk on a 1-10 scale where
// higher means more risk. Starts from a neutral 5.0.
func AssetQualityRiskScore(d *schema.InstitutionData) float64 {
	score := 5.0

	if npl, ok := d.Latest(schema.MetricNPL); ok {
		if npl > 3.0 {
			score += 2.0
		} else if npl > 2.0 {
			score += 1.0
		} else if npl < 1.0 {
			score -= 1.0
		}
	}

	if coverage, ok := d.Latest(schema.MetricCoverage); ok {
		if coverage < 60 {
			score += 1.5
		} else if coverage > 100 {
			score -= 0.5
		}
	}

	if provisions, ok := d.Latest(schema.MetricProvisions); ok {
		if provisions > 1.5 {
			score += 1.0
		} else if provisions < 0.5 {
			score -= 0.5
		}
	}

	if classification, ok := d.Latest(schema.MetricClassification); ok {
		if classification > 5 {
			score += 1.0
		} else if classification < 3 {
			score -= 0.5
		}
	}

	return clampScore(score)
}

// LiquidityRiskScore rates liquidity risk on a 1-10 scale where higher
// means more risk. Starts from a neutral 5.0 and weighs regulatory ratios,
// funding concentration and LCR volatility.
func LiquidityRiskScore(d *schema.InstitutionData) float64 {
	score := 5.0

	if lcr, ok := d.Latest(schema.MetricLCR); ok {
		if lcr < 100 {
			score += 3.0 // major penalty for non-compliance
		} else if lcr < 110 {
			score += 1.0
		} else if lcr > 130 {
			score -= 1.0
		}
	}

	if nsfr, ok := d.Latest(schema.MetricNSFR); ok {
		if nsfr < 100 {
			score += 2.0
		} else if nsfr < 105 {
			score += 0.5
		} else if nsfr > 120 {
			score -= 0.5
		}
	}

	if ltd, ok := d.Latest(schema.MetricLoanToDeposit); ok {
		if ltd > 95 {
			score += 1.5
		} else if ltd > 90 {
			score += 0.5
		} else if ltd < 80 {
			score -= 0.5
		}
	}

	if stddev(d.Series(schema.MetricLCR)) > 10 {
		score += 0.5
	}

	return clampScore(score)
}

// FundingDiversificationScore grades funding mix from the loan-to-deposit
// ratio. Lower reliance on loans relative to deposits scores higher.
func FundingDiversificationScore(loanToDeposit float64) float64 {
	switch {
	case loanToDeposit < 75:
		return 9.0
	case loanToDeposit < 85:
		return 7.0
	case loanToDeposit < 95:
		return 5.0
	default:
		return 3.0
	}
}

// LiquidityRunwayDays estimates how many days of stress the liquidity
// position covers. 5 days are added per cash-ratio point above 8%.
// The result is capped between 7 and 180 days.
func LiquidityRunwayDays(lcr, cashRatio float64) int {
	runway := 30.0

	switch {
	case lcr > 130:
		runway += 60
	case lcr > 110:
		runway += 30
	case lcr > 100:
		// no adjustment
	default:
		runway -= 30
	}

	runway += (cashRatio - 8) * 5

	days := int(runway)
	if days < 7 {
		return 7
	}
	if days > 180 {
		return 180
	}
	return days
}

// StressScenarios projects the LCR and NSFR under four stress levels.
// A scenario passes when both stressed ratios hold the 100% floor.
func StressScenarios(lcr, nsfr float64) []schema.StressResult {
	scenarios := []struct {
		name       string
		lcrFactor  float64
		nsfrFactor float64
	}{
		{"Baseline", 1.00, 1.00},
		{"Mild Stress", 0.85, 0.90},     // 15% liquid asset decline, 10% funding decline
		{"Moderate Stress", 0.70, 0.80}, // 30% and 20% declines
		{"Severe Stress", 0.55, 0.70},   // 45% and 30% declines
	}

	results := make([]schema.StressResult, 0, len(scenarios))
	for _, s := range scenarios {
		stressedLCR := lcr * s.lcrFactor
		stressedNSFR := nsfr * s.nsfrFactor
		results = append(results, schema.StressResult{
			Scenario:   s.name,
			LCRFactor:  s.lcrFactor,
			NSFRFactor: s.nsfrFactor,
			LCR:        stressedLCR,
			NSFR:       stressedNSFR,
			Pass:       stressedLCR >= 100 && stressedNSFR >= 100,
		})
	}
	return results
}

// BufferComposition estimates the liquidity buffer breakdown from the LCR
// level using a typical bank composition.
func BufferComposition(lcr float64) []schema.BufferComponent {
	shares := []struct {
		name  string
		share float64
	}{
		{"Cash & Central Bank Reserves", 0.30},
		{"Government Securities", 0.25},
		{"Corporate Bonds (High Grade)", 0.20},
		{"Covered Bonds", 0.15},
		{"Other Liquid Assets", 0.10},
	}

	components := make([]schema.BufferComponent, 0, len(shares))
	for _, s := range shares {
		components = append(components, schema.BufferComponent{
			Name:  s.name,
			Share: s.share,
			Value: lcr * s.share,
		})
	}
	return components
}

// seasonalFactors shape the cash flow projection over a calendar year.
var seasonalFactors = [12]float64{0.9, 0.95, 1.0, 1.05, 1.0, 0.95, 0.9, 0.95, 1.05, 1.1, 1.05, 1.0}

// CashFlowProjection projects monthly inflows and outflows in millions.
// Horizons beyond twelve months repeat the seasonal cycle.
func CashFlowProjection(months int) []schema.CashFlowPoint {
	const (
		baseInflow  = 100.0
		baseOutflow = 95.0
	)

	points := make([]schema.CashFlowPoint, 0, months)
	for i := range months {
		factor := seasonalFactors[i%len(seasonalFactors)]
		inflow := baseInflow * factor
		outflow := baseOutflow * factor
		points = append(points, schema.CashFlowPoint{
			Month:   i + 1,
			Inflow:  inflow,
			Outflow: outflow,
			Net:     inflow - outflow,
		})
	}
	return points
}
