package schema

// MetricBenchmark holds the display benchmarks shown next to a metric.
// These are looser presentation thresholds, distinct from the scoring model.
type MetricBenchmark struct {
	Good float64
	Fair float64
	Poor float64
}

// MetricInfo describes a metric for display purposes.
type MetricInfo struct {
	Name        string
	Unit        string
	Description string
	Benchmark   *MetricBenchmark // nil for informational metrics
}

// GetMetricCatalog returns display metadata for every metric, keyed by category.
func GetMetricCatalog() map[Category]map[MetricKey]MetricInfo {
	return map[Category]map[MetricKey]MetricInfo{
		Capitalization: {
			MetricCapitalAdequacy: {
				Name:        "Capital Adequacy Ratio",
				Unit:        "%",
				Description: "Measures bank's available capital as percentage of risk-weighted assets",
				Benchmark:   &MetricBenchmark{Good: 12, Fair: 10, Poor: 8},
			},
			MetricTier1: {
				Name:        "Tier 1 Capital Ratio",
				Unit:        "%",
				Description: "Core capital ratio measuring financial strength",
				Benchmark:   &MetricBenchmark{Good: 10, Fair: 8, Poor: 6},
			},
			MetricLeverage: {
				Name:        "Leverage Ratio",
				Unit:        "%",
				Description: "Tier 1 capital as percentage of total assets",
				Benchmark:   &MetricBenchmark{Good: 5, Fair: 4, Poor: 3},
			},
			MetricRiskWeighted: {
				Name:        "Risk Weighted Assets",
				Unit:        "$ Millions",
				Description: "Total assets adjusted for credit risk",
			},
		},
		AssetQuality: {
			MetricNPL: {
				Name:        "Non-Performing Loans Ratio",
				Unit:        "%",
				Description: "Percentage of loans that are non-performing",
				Benchmark:   &MetricBenchmark{Good: 1, Fair: 2, Poor: 3},
			},
			MetricProvisions: {
				Name:        "Loan Loss Provisions",
				Unit:        "%",
				Description: "Provisions set aside for expected loan losses",
				Benchmark:   &MetricBenchmark{Good: 0.5, Fair: 1.0, Poor: 1.5},
			},
			MetricCoverage: {
				Name:        "Coverage Ratio",
				Unit:        "%",
				Description: "Provisions as percentage of non-performing loans",
				Benchmark:   &MetricBenchmark{Good: 80, Fair: 60, Poor: 40},
			},
			MetricClassification: {
				Name:        "Asset Classification Score",
				Unit:        "Score",
				Description: "Overall asset quality classification score",
				Benchmark:   &MetricBenchmark{Good: 2, Fair: 4, Poor: 6},
			},
		},
		Profitability: {
			MetricROA: {
				Name:        "Return on Assets (ROA)",
				Unit:        "%",
				Description: "Net income as percentage of total assets",
				Benchmark:   &MetricBenchmark{Good: 1.2, Fair: 0.8, Poor: 0.4},
			},
			MetricROE: {
				Name:        "Return on Equity (ROE)",
				Unit:        "%",
				Description: "Net income as percentage of shareholders' equity",
				Benchmark:   &MetricBenchmark{Good: 12, Fair: 8, Poor: 4},
			},
			MetricNIM: {
				Name:        "Net Interest Margin",
				Unit:        "%",
				Description: "Net interest income as percentage of earning assets",
				Benchmark:   &MetricBenchmark{Good: 3.5, Fair: 2.5, Poor: 1.5},
			},
			MetricCostToIncome: {
				Name:        "Cost-to-Income Ratio",
				Unit:        "%",
				Description: "Operating expenses as percentage of operating income",
				Benchmark:   &MetricBenchmark{Good: 60, Fair: 70, Poor: 80},
			},
			MetricEPS: {
				Name:        "Earnings Per Share",
				Unit:        "$",
				Description: "Net earnings divided by number of shares outstanding",
				Benchmark:   &MetricBenchmark{Good: 8, Fair: 5, Poor: 2},
			},
		},
		Liquidity: {
			MetricLCR: {
				Name:        "Liquidity Coverage Ratio (LCR)",
				Unit:        "%",
				Description: "High-quality liquid assets vs net cash outflows",
				Benchmark:   &MetricBenchmark{Good: 120, Fair: 110, Poor: 100},
			},
			MetricNSFR: {
				Name:        "Net Stable Funding Ratio (NSFR)",
				Unit:        "%",
				Description: "Stable funding vs required stable funding",
				Benchmark:   &MetricBenchmark{Good: 110, Fair: 105, Poor: 100},
			},
			MetricLoanToDeposit: {
				Name:        "Loan-to-Deposit Ratio",
				Unit:        "%",
				Description: "Total loans as percentage of total deposits",
				Benchmark:   &MetricBenchmark{Good: 80, Fair: 85, Poor: 90},
			},
			MetricCashRatio: {
				Name:        "Cash Ratio",
				Unit:        "%",
				Description: "Cash and equivalents as percentage of current liabilities",
				Benchmark:   &MetricBenchmark{Good: 10, Fair: 7, Poor: 5},
			},
		},
	}
}
