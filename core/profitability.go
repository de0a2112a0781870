package core

import (
	"math"

	"github.com/creditlens/creditlens/schema"
)

// profitabilityLens holds the simplified good/fair breakpoints used by the
// earnings deep-dive. These are deliberately looser than the main scoring
// model and use a coarser three-segment curve.
var profitabilityLens = []struct {
	key    schema.MetricKey
	weight float64
	good   float64
	fair   float64
}{
	{schema.MetricROA, 0.30, 1.2, 0.8},
	{schema.MetricROE, 0.30, 12, 8},
	{schema.MetricNIM, 0.25, 3.5, 2.5},
	{schema.MetricEPS, 0.15, 8, 5},
}

// ProfitabilityComposite scores earnings strength on the coarse three
// segment curve: at or above good is a 10, between fair and good
// interpolates 5-10, and below fair decays proportionally with a floor of 1.
func ProfitabilityComposite(metrics map[schema.MetricKey]float64) float64 {
	var total float64
	for _, lens := range profitabilityLens {
		value := metrics[lens.key]

		var metricScore float64
		switch {
		case value >= lens.good:
			metricScore = 10
		case value >= lens.fair:
			metricScore = 5 + 5*(value-lens.fair)/(lens.good-lens.fair)
		default:
			metricScore = math.Max(1, 5*value/lens.fair)
		}

		total += metricScore * lens.weight
	}
	return clampScore(total)
}

// EfficiencyScore grades the cost-to-income ratio on a 1-10 scale.
// Lower ratios are better; anything at or above 90% floors at 1.
func EfficiencyScore(costToIncome float64) float64 {
	switch {
	case costToIncome <= 50:
		return 10
	case costToIncome <= 60:
		return 8 + 2*(60-costToIncome)/10
	case costToIncome <= 70:
		return 5 + 3*(70-costToIncome)/10
	case costToIncome <= 80:
		return 2 + 3*(80-costToIncome)/10
	case costToIncome < 90:
		return math.Max(1.0, 2*(90-costToIncome)/10)
	default:
		return 1.0
	}
}
