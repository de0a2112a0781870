package schema

// MetricThreshold defines the piecewise-linear scoring breakpoints for one metric.
// For regular metrics higher is better and Excellent > Good > Fair > Poor.
// For Reverse metrics lower is better and Excellent < Good < Fair < Poor.
type MetricThreshold struct {
	Weight    float64 // Contribution weight within the category
	Excellent float64 // Values at or beyond this score 10
	Good      float64 // Boundary score 7
	Fair      float64 // Boundary score 5
	Poor      float64 // Boundary score 2
	Reverse   bool    // True when lower values are better
}

// Ordered reports whether the breakpoints are strictly ordered for the
// metric's direction. Unordered breakpoints would produce zero-width
// segments and divide-by-zero interpolation.
func (t MetricThreshold) Ordered() bool {
	if t.Reverse {
		return t.Excellent < t.Good && t.Good < t.Fair && t.Fair < t.Poor
	}
	return t.Excellent > t.Good && t.Good > t.Fair && t.Fair > t.Poor
}

// CategoryConfig maps each scored metric of a category to its threshold.
type CategoryConfig map[MetricKey]MetricThreshold

// ScoringConfig is the full scoring model across all categories.
type ScoringConfig map[Category]CategoryConfig

// GetDefaultScoringConfig returns the built-in scoring model.
// Weights within each category sum to 1.0.
func GetDefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Capitalization: {
			MetricCapitalAdequacy: {Weight: 0.35, Excellent: 15, Good: 12, Fair: 10, Poor: 8},
			MetricTier1:           {Weight: 0.35, Excellent: 12, Good: 10, Fair: 8, Poor: 6},
			MetricLeverage:        {Weight: 0.30, Excellent: 8, Good: 6, Fair: 5, Poor: 3},
		},
		AssetQuality: {
			MetricNPL:            {Weight: 0.40, Excellent: 0.5, Good: 1.0, Fair: 2.0, Poor: 3.0, Reverse: true},
			MetricProvisions:     {Weight: 0.30, Excellent: 0.3, Good: 0.5, Fair: 1.0, Poor: 1.5, Reverse: true},
			MetricCoverage:       {Weight: 0.20, Excellent: 120, Good: 100, Fair: 80, Poor: 60},
			MetricClassification: {Weight: 0.10, Excellent: 1, Good: 2, Fair: 4, Poor: 6, Reverse: true},
		},
		Profitability: {
			MetricROA:          {Weight: 0.25, Excellent: 1.5, Good: 1.2, Fair: 0.8, Poor: 0.4},
			MetricROE:          {Weight: 0.25, Excellent: 15, Good: 12, Fair: 8, Poor: 4},
			MetricNIM:          {Weight: 0.25, Excellent: 4.0, Good: 3.5, Fair: 2.5, Poor: 1.5},
			MetricCostToIncome: {Weight: 0.15, Excellent: 50, Good: 60, Fair: 70, Poor: 80, Reverse: true},
			MetricEPS:          {Weight: 0.10, Excellent: 10, Good: 8, Fair: 5, Poor: 2},
		},
		Liquidity: {
			MetricLCR:           {Weight: 0.35, Excellent: 130, Good: 120, Fair: 110, Poor: 100},
			MetricNSFR:          {Weight: 0.35, Excellent: 120, Good: 110, Fair: 105, Poor: 100},
			MetricLoanToDeposit: {Weight: 0.20, Excellent: 75, Good: 80, Fair: 85, Poor: 90, Reverse: true},
			MetricCashRatio:     {Weight: 0.10, Excellent: 12, Good: 10, Fair: 7, Poor: 5},
		},
	}
}

// CategoryMetricOrder gives a stable display order for each category's metrics.
var CategoryMetricOrder = map[Category][]MetricKey{
	Capitalization: {MetricCapitalAdequacy, MetricTier1, MetricLeverage},
	AssetQuality:   {MetricNPL, MetricProvisions, MetricCoverage, MetricClassification},
	Profitability:  {MetricROA, MetricROE, MetricNIM, MetricCostToIncome, MetricEPS},
	Liquidity:      {MetricLCR, MetricNSFR, MetricLoanToDeposit, MetricCashRatio},
}

// RatingBands is the descending rating scale. The first band whose Min the
// score meets wins; the final CCC band catches everything below 3.5.
var RatingBands = []RatingBand{
	{Min: 8.5, Rating: "AAA", Description: "Excellent Credit Quality", Color: "green"},
	{Min: 7.5, Rating: "AA", Description: "Very Good Credit Quality", Color: "green"},
	{Min: 6.5, Rating: "A", Description: "Good Credit Quality", Color: "blue"},
	{Min: 5.5, Rating: "BBB", Description: "Fair Credit Quality", Color: "orange"},
	{Min: 4.5, Rating: "BB", Description: "Speculative Credit Quality", Color: "orange"},
	{Min: 3.5, Rating: "B", Description: "Highly Speculative", Color: "red"},
	{Min: 0, Rating: "CCC", Description: "Poor Credit Quality", Color: "red"},
}
