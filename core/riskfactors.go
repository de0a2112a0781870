package core

import (
	"github.com/creditlens/creditlens/schema"
)

// AssessRiskFactors builds the overview risk matrix from the latest data
// and multi-year trends. Every factor lands in exactly one level except the
// trend checks, which only fire when the trend is pronounced.
func AssessRiskFactors(d *schema.InstitutionData) []schema.RiskFactor {
	var factors []schema.RiskFactor
	add := func(name string, level schema.RiskLevel, detail string) {
		factors = append(factors, schema.RiskFactor{Name: name, Level: level, Detail: detail})
	}

	// Capital risk
	if car, ok := d.Latest(schema.MetricCapitalAdequacy); ok {
		if car > 15 {
			add("Capital", schema.LowRisk, "Strong capital position")
		} else if car < 10 {
			add("Capital", schema.HighRisk, "Weak capital adequacy")
		} else {
			add("Capital", schema.MediumRisk, "Adequate capital levels")
		}
	}

	// Asset quality risk
	if npl, ok := d.Latest(schema.MetricNPL); ok {
		if npl < 1.0 {
			add("Asset Quality", schema.LowRisk, "Excellent asset quality")
		} else if npl > 3.0 {
			add("Asset Quality", schema.HighRisk, "Poor asset quality")
		} else {
			add("Asset Quality", schema.MediumRisk, "Moderate asset quality concerns")
		}
	}

	// Profitability risk
	if roa, ok := d.Latest(schema.MetricROA); ok {
		if roa > 1.2 {
			add("Profitability", schema.LowRisk, "Strong profitability")
		} else if roa < 0.5 {
			add("Profitability", schema.HighRisk, "Weak profitability")
		} else {
			add("Profitability", schema.MediumRisk, "Moderate profitability")
		}
	}

	// Liquidity risk
	if lcr, ok := d.Latest(schema.MetricLCR); ok {
		if lcr > 130 {
			add("Liquidity", schema.LowRisk, "Strong liquidity position")
		} else if lcr < 110 {
			add("Liquidity", schema.HighRisk, "Tight liquidity position")
		} else {
			add("Liquidity", schema.MediumRisk, "Adequate liquidity levels")
		}
	}

	// Trend analysis
	roaTrend := trend(d.Series(schema.MetricROA))
	if roaTrend > 0.3 {
		add("Trend", schema.LowRisk, "Improving profitability trend")
	} else if roaTrend < -0.3 {
		add("Trend", schema.HighRisk, "Declining profitability trend")
	}

	return factors
}

// AssessLiquidityRiskFactors builds the liquidity-specific risk matrix.
func AssessLiquidityRiskFactors(d *schema.InstitutionData) []schema.RiskFactor {
	var factors []schema.RiskFactor
	add := func(name string, level schema.RiskLevel, detail string) {
		factors = append(factors, schema.RiskFactor{Name: name, Level: level, Detail: detail})
	}

	// Regulatory compliance
	if lcr, ok := d.Latest(schema.MetricLCR); ok {
		if lcr < 100 {
			add("Regulatory", schema.HighRisk, "LCR below regulatory minimum")
		} else if lcr > 120 {
			add("Regulatory", schema.LowRisk, "Strong LCR buffer above minimum")
		} else {
			add("Regulatory", schema.MediumRisk, "LCR meets but close to minimum")
		}
	}

	if nsfr, ok := d.Latest(schema.MetricNSFR); ok {
		if nsfr < 100 {
			add("Regulatory", schema.HighRisk, "NSFR below regulatory minimum")
		} else if nsfr > 110 {
			add("Regulatory", schema.LowRisk, "Strong NSFR buffer")
		} else {
			add("Regulatory", schema.MediumRisk, "NSFR adequate but limited buffer")
		}
	}

	// Funding concentration
	if ltd, ok := d.Latest(schema.MetricLoanToDeposit); ok {
		if ltd > 90 {
			add("Funding", schema.HighRisk, "High loan-to-deposit ratio")
		} else if ltd < 80 {
			add("Funding", schema.LowRisk, "Conservative lending relative to deposits")
		} else {
			add("Funding", schema.MediumRisk, "Moderate loan-to-deposit ratio")
		}
	}

	// Cash position
	if cash, ok := d.Latest(schema.MetricCashRatio); ok {
		if cash < 5 {
			add("Cash", schema.HighRisk, "Low cash reserves")
		} else if cash > 10 {
			add("Cash", schema.LowRisk, "Strong cash position")
		} else {
			add("Cash", schema.MediumRisk, "Adequate cash reserves")
		}
	}

	// Trend analysis
	lcrTrend := trend(d.Series(schema.MetricLCR))
	if lcrTrend < -10 {
		add("Trend", schema.HighRisk, "Declining LCR trend")
	} else if lcrTrend > 10 {
		add("Trend", schema.LowRisk, "Improving LCR trend")
	}

	return factors
}
