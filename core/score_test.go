package core

import (
	"errors"
	"math"
	"testing"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMetricBreakpoints(t *testing.T) {
	// CAR thresholds: 15 / 12 / 10 / 8, higher is better.
	threshold := schema.MetricThreshold{Weight: 0.35, Excellent: 15, Good: 12, Fair: 10, Poor: 8}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"above excellent", 18, 10},
		{"at excellent", 15, 10},
		{"at good", 12, 7},
		{"midway good-excellent", 13.5, 8.5},
		{"at fair", 10, 5},
		{"midway fair-good", 11, 6},
		{"at poor", 8, 2},
		{"midway poor-fair", 9, 3.5},
		{"below poor", 4, 1.5}, // 1 + 4/8
		{"at zero", 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, scoreMetric(tc.value, threshold), 1e-9)
		})
	}
}

func TestScoreMetricReverseBreakpoints(t *testing.T) {
	// NPL thresholds: 0.5 / 1.0 / 2.0 / 3.0, lower is better.
	threshold := schema.MetricThreshold{Weight: 0.40, Excellent: 0.5, Good: 1.0, Fair: 2.0, Poor: 3.0, Reverse: true}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"below excellent", 0.2, 10},
		{"at excellent", 0.5, 10},
		{"at good", 1.0, 7},
		{"midway excellent-good", 0.75, 8.5},
		{"at fair", 2.0, 5},
		{"at poor", 3.0, 2},
		{"midway fair-poor", 2.5, 3.5},
		{"beyond poor", 5.0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, scoreMetric(tc.value, threshold), 1e-9)
		})
	}
}

func TestScoreMetricContinuityAtBoundaries(t *testing.T) {
	threshold := schema.MetricThreshold{Excellent: 15, Good: 12, Fair: 10, Poor: 8}
	const eps = 1e-9

	for _, boundary := range []float64{15, 12, 10, 8} {
		below := scoreMetric(boundary-eps, threshold)
		at := scoreMetric(boundary, threshold)
		assert.InDelta(t, at, below, 1e-6, "discontinuity at %v", boundary)
	}
}

func TestScoreMetricMonotonic(t *testing.T) {
	threshold := schema.MetricThreshold{Excellent: 15, Good: 12, Fair: 10, Poor: 8}

	prev := scoreMetric(0, threshold)
	for v := 0.5; v <= 20; v += 0.5 {
		score := scoreMetric(v, threshold)
		assert.GreaterOrEqual(t, score, prev, "score decreased at value %v", v)
		prev = score
	}
}

func TestScoreCategoryAllExcellent(t *testing.T) {
	model := schema.GetDefaultScoringConfig()
	metrics := map[schema.MetricKey]float64{
		schema.MetricCapitalAdequacy: 16,
		schema.MetricTier1:           13,
		schema.MetricLeverage:        9,
	}

	result, err := ScoreCategory(metrics, schema.Capitalization, model[schema.Capitalization])
	require.NoError(t, err)
	assert.InDelta(t, 10.0, result.Score, 1e-9)
	assert.Len(t, result.Breakdown, 3)
}

func TestScoreCategoryPartialRecordFails(t *testing.T) {
	model := schema.GetDefaultScoringConfig()

	// Only CAR present: the record must not be scored, and the error
	// names the absent metrics instead of defaulting them to zero.
	metrics := map[schema.MetricKey]float64{schema.MetricCapitalAdequacy: 12}

	_, err := ScoreCategory(metrics, schema.Capitalization, model[schema.Capitalization])
	require.Error(t, err)

	var missingErr *contract.MissingMetricError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, schema.Capitalization, missingErr.Category)
	assert.ElementsMatch(t, []schema.MetricKey{schema.MetricTier1, schema.MetricLeverage}, missingErr.Missing)
}

func TestScoreCategoryAllMissing(t *testing.T) {
	model := schema.GetDefaultScoringConfig()

	_, err := ScoreCategory(map[schema.MetricKey]float64{}, schema.Capitalization, model[schema.Capitalization])
	require.Error(t, err)

	var missingErr *contract.MissingMetricError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, schema.Capitalization, missingErr.Category)
	assert.Len(t, missingErr.Missing, 3)
}

func TestScoreAllCategoriesPropagatesMissing(t *testing.T) {
	model := schema.GetDefaultScoringConfig()

	// Only liquidity data: the incomplete categories fail the whole record.
	metrics := map[schema.MetricKey]float64{
		schema.MetricLCR:           125,
		schema.MetricNSFR:          112,
		schema.MetricLoanToDeposit: 78,
		schema.MetricCashRatio:     11,
	}

	_, err := ScoreAllCategories(metrics, model)
	require.Error(t, err)

	var missingErr *contract.MissingMetricError
	require.True(t, errors.As(err, &missingErr))
	assert.NotEqual(t, schema.Liquidity, missingErr.Category)
}

func TestScoreAllCategoriesNoData(t *testing.T) {
	_, err := ScoreAllCategories(map[schema.MetricKey]float64{}, schema.GetDefaultScoringConfig())
	require.Error(t, err)

	var missingErr *contract.MissingMetricError
	assert.True(t, errors.As(err, &missingErr))
}

func TestScoreOverallWeightedVersusMean(t *testing.T) {
	categories := map[schema.Category]schema.CategoryResult{
		schema.Capitalization: {Score: 8},
		schema.AssetQuality:   {Score: 6},
		schema.Profitability:  {Score: 7},
		schema.Liquidity:      {Score: 9},
	}
	weights := schema.GetDefaultCategoryWeights()

	// 8*0.25 + 6*0.30 + 7*0.25 + 9*0.20 = 7.35
	assert.InDelta(t, 7.35, ScoreOverallWeighted(categories, weights), 1e-9)
	assert.InDelta(t, 7.5, ScoreOverallMean(categories), 1e-9)
}

func TestScoreOverallWeightedRenormalizes(t *testing.T) {
	categories := map[schema.Category]schema.CategoryResult{
		schema.Capitalization: {Score: 8},
		schema.AssetQuality:   {Score: 6},
	}
	weights := schema.GetDefaultCategoryWeights()

	// (8*0.25 + 6*0.30) / 0.55
	assert.InDelta(t, 6.909090909, ScoreOverallWeighted(categories, weights), 1e-6)
}

func TestScoreOverallEmpty(t *testing.T) {
	assert.Zero(t, ScoreOverallWeighted(nil, schema.GetDefaultCategoryWeights()))
	assert.Zero(t, ScoreOverallMean(nil))
}

func TestInterpretScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.5, "AAA"},
		{8.5, "AAA"},
		{8.49, "AA"},
		{7.5, "AA"},
		{6.5, "A"},
		{5.5, "BBB"},
		{4.5, "BB"},
		{3.5, "B"},
		{3.49, "CCC"},
		{1.0, "CCC"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, InterpretScore(tc.score).Rating, "score %v", tc.score)
	}
}

func BenchmarkScoreAllCategories(b *testing.B) {
	model := schema.GetDefaultScoringConfig()
	metrics := map[schema.MetricKey]float64{
		schema.MetricCapitalAdequacy: 14.2,
		schema.MetricTier1:           11.8,
		schema.MetricLeverage:        6.5,
		schema.MetricNPL:             1.4,
		schema.MetricProvisions:      0.7,
		schema.MetricCoverage:        95,
		schema.MetricClassification:  3,
		schema.MetricROA:             1.1,
		schema.MetricROE:             11.5,
		schema.MetricNIM:             3.1,
		schema.MetricCostToIncome:    62,
		schema.MetricEPS:             7.2,
		schema.MetricLCR:             124,
		schema.MetricNSFR:            109,
		schema.MetricLoanToDeposit:   82,
		schema.MetricCashRatio:       9.5,
	}

	for b.Loop() {
		_, _ = ScoreAllCategories(metrics, model)
	}
}

func FuzzScoreMetric(f *testing.F) {
	f.Add(14.2, false)
	f.Add(0.0, false)
	f.Add(-3.0, false)
	f.Add(1.4, true)
	f.Add(100.0, true)

	threshold := schema.MetricThreshold{Excellent: 15, Good: 12, Fair: 10, Poor: 8}
	reverseThreshold := schema.MetricThreshold{Excellent: 0.5, Good: 1.0, Fair: 2.0, Poor: 3.0, Reverse: true}

	f.Fuzz(func(t *testing.T, value float64, reverse bool) {
		if math.IsNaN(value) {
			t.Skip("NaN is not a representable metric value")
		}

		th := threshold
		if reverse {
			th = reverseThreshold
		}
		score := scoreMetric(value, th)

		assert.LessOrEqual(t, score, 10.0, "score above scale for value %v", value)
		if reverse || value >= 0 {
			assert.GreaterOrEqual(t, score, 1.0, "score below scale for value %v", value)
		}

		// Clamping restores the scale even for negative regular values.
		assert.GreaterOrEqual(t, clampScore(score), 1.0)
	})
}
