// Package schema has configs, models and global variables for all parts of creditlens.
package schema

// InstitutionData holds the historical metric series for a single institution.
// Metric series are parallel to Years, ordered oldest first.
type InstitutionData struct {
	Name        string                  // Full legal name of the institution
	Type        string                  // Institution type, e.g. "Bank" or "Broker Dealer"
	TotalAssets float64                 // Total assets in millions of dollars
	Employees   int                     // Headcount estimate
	Branches    int                     // Branch count estimate
	Years       []int                   // Reporting years, oldest first
	Metrics     map[MetricKey][]float64 // Per-metric values parallel to Years
}

// Series returns the full historical series for a metric, or nil if absent.
func (d *InstitutionData) Series(key MetricKey) []float64 {
	return d.Metrics[key]
}

// Latest returns the most recent value for a metric.
// The second return value is false when the metric has no data.
func (d *InstitutionData) Latest(key MetricKey) (float64, bool) {
	series := d.Metrics[key]
	if len(series) == 0 {
		return 0, false
	}
	return series[len(series)-1], true
}

// LatestMetrics flattens the most recent year into a single metric map.
func (d *InstitutionData) LatestMetrics() map[MetricKey]float64 {
	latest := make(map[MetricKey]float64, len(d.Metrics))
	for key, series := range d.Metrics {
		if len(series) > 0 {
			latest[key] = series[len(series)-1]
		}
	}
	return latest
}

// CategoryResult is the outcome of scoring one metric category.
type CategoryResult struct {
	Score     float64               // Weighted category score, clamped to [1,10]
	Breakdown map[MetricKey]float64 // Individual metric scores before weighting
}

// RatingBand maps a score interval to a letter rating.
type RatingBand struct {
	Min         float64 // Inclusive lower bound of the band
	Rating      string  // Letter rating, e.g. "AAA"
	Description string  // Human-readable credit quality description
	Color       string  // Presentation hint: green, blue, orange or red
}

// ManagementAssessment is the qualitative management quality verdict.
type ManagementAssessment struct {
	Score       float64
	Rating      string // Strong, Satisfactory, Fair or Weak
	Description string
}

// StressResult captures one liquidity stress scenario outcome.
type StressResult struct {
	Scenario   string  // Scenario name, e.g. "Severe Stress"
	LCRFactor  float64 // Multiplier applied to the baseline LCR
	NSFRFactor float64 // Multiplier applied to the baseline NSFR
	LCR        float64 // Stressed liquidity coverage ratio
	NSFR       float64 // Stressed net stable funding ratio
	Pass       bool    // Both stressed ratios at or above the 100% floor
}

// RiskFactor is one row of a qualitative risk matrix.
type RiskFactor struct {
	Name   string
	Level  RiskLevel
	Detail string
}

// BufferComponent is one slice of the liquidity buffer composition.
type BufferComponent struct {
	Name  string
	Share float64 // Fraction of the total buffer
	Value float64 // Share applied to the LCR level
}

// CashFlowPoint is a single month of the projected funding profile.
type CashFlowPoint struct {
	Month   int
	Inflow  float64
	Outflow float64
	Net     float64
}

// CreditReport is the full scoring output for one institution.
type CreditReport struct {
	Institution            string
	Type                   string
	TotalAssets            float64
	Year                   int                         // Reporting year the scores are based on
	Categories             map[Category]CategoryResult // Per-category results
	Overall                float64                     // Weighted overall score
	Mean                   float64                     // Unweighted mean of category scores
	Rating                 RatingBand
	Management             ManagementAssessment
	LiquidityRisk          float64
	AssetQualityRisk       float64
	FundingDiversification float64
	RunwayDays             int
	Stress                 []StressResult
	Commentary             string // Narrative summary, empty when disabled
}
