package schema

// Custom string types for type safety.
type (
	// MetricKey identifies a single financial metric.
	MetricKey string

	// Category represents a scoring category.
	Category string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for analysis tracking.
	DatabaseBackend string

	// SummarizerBackend selects the narrative commentary engine.
	SummarizerBackend string

	// RiskLevel grades a qualitative risk factor.
	RiskLevel string
)

// Capitalization metrics.
const (
	MetricCapitalAdequacy MetricKey = "capital_adequacy_ratio"
	MetricTier1           MetricKey = "tier1_ratio"
	MetricLeverage        MetricKey = "leverage_ratio"
	MetricRiskWeighted    MetricKey = "risk_weighted_assets" // informational, not scored
)

// Asset quality metrics.
const (
	MetricNPL            MetricKey = "npl_ratio"
	MetricProvisions     MetricKey = "loan_loss_provisions"
	MetricCoverage       MetricKey = "coverage_ratio"
	MetricClassification MetricKey = "asset_classification"
)

// Profitability metrics.
const (
	MetricROA          MetricKey = "return_on_assets"
	MetricROE          MetricKey = "return_on_equity"
	MetricNIM          MetricKey = "net_interest_margin"
	MetricCostToIncome MetricKey = "cost_to_income_ratio"
	MetricEPS          MetricKey = "earnings_per_share"
)

// Liquidity metrics.
const (
	MetricLCR           MetricKey = "liquidity_coverage_ratio"
	MetricNSFR          MetricKey = "net_stable_funding_ratio"
	MetricLoanToDeposit MetricKey = "loan_to_deposit_ratio"
	MetricCashRatio     MetricKey = "cash_ratio"
)

// All scoring categories supported.
const (
	Capitalization Category = "capitalization" // weight 0.25
	AssetQuality   Category = "asset_quality"  // weight 0.30
	Profitability  Category = "profitability"  // weight 0.25
	Liquidity      Category = "liquidity"      // weight 0.20
)

// All output modes supported.
const (
	TableOut   OutputMode = "table" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All analysis backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All summarizer backends supported.
const (
	LocalSummarizer  SummarizerBackend = "local" // default, deterministic
	OpenAISummarizer SummarizerBackend = "openai"
)

// Risk levels used in risk factor matrices.
const (
	LowRisk    RiskLevel = "Low"
	MediumRisk RiskLevel = "Medium"
	HighRisk   RiskLevel = "High"
)

// AllCategories returns categories in canonical display order.
var AllCategories = []Category{Capitalization, AssetQuality, Profitability, Liquidity}

// categoryDisplayNames maps category keys to their display names.
var categoryDisplayNames = map[Category]string{
	Capitalization: "Capitalization",
	AssetQuality:   "Asset Quality",
	Profitability:  "Profitability",
	Liquidity:      "Liquidity",
}

// CategoryDisplayName returns the human-readable name for a category.
func CategoryDisplayName(category Category) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return string(category)
}

// ValidCategories lists all valid scoring categories.
var ValidCategories = map[Category]struct{}{
	Capitalization: {},
	AssetQuality:   {},
	Profitability:  {},
	Liquidity:      {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid analysis backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSummarizerBackends lists all valid summarizer backends.
var ValidSummarizerBackends = map[SummarizerBackend]struct{}{
	LocalSummarizer:  {},
	OpenAISummarizer: {},
}

// GetDefaultCategoryWeights returns the weights used for the weighted overall score.
func GetDefaultCategoryWeights() map[Category]float64 {
	return map[Category]float64{
		Capitalization: 0.25,
		AssetQuality:   0.30,
		Profitability:  0.25,
		Liquidity:      0.20,
	}
}
