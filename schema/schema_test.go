package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringConfigWeights(t *testing.T) {
	cfg := GetDefaultScoringConfig()
	assert.Len(t, cfg, len(AllCategories))

	for category, metrics := range cfg {
		var sum float64
		for _, threshold := range metrics {
			sum += threshold.Weight
		}
		assert.InDelta(t, 1.0, sum, 0.001, "weights for %s should sum to 1.0", category)
	}
}

func TestDefaultScoringConfigOrdered(t *testing.T) {
	for category, metrics := range GetDefaultScoringConfig() {
		for key, threshold := range metrics {
			assert.True(t, threshold.Ordered(), "%s/%s has unordered breakpoints", category, key)
		}
	}
}

func TestThresholdOrdered(t *testing.T) {
	tests := []struct {
		name      string
		threshold MetricThreshold
		want      bool
	}{
		{"regular ordered", MetricThreshold{Excellent: 15, Good: 12, Fair: 10, Poor: 8}, true},
		{"regular flat segment", MetricThreshold{Excellent: 15, Good: 12, Fair: 12, Poor: 8}, false},
		{"regular inverted", MetricThreshold{Excellent: 8, Good: 10, Fair: 12, Poor: 15}, false},
		{"reverse ordered", MetricThreshold{Excellent: 0.5, Good: 1, Fair: 2, Poor: 3, Reverse: true}, true},
		{"reverse inverted", MetricThreshold{Excellent: 3, Good: 2, Fair: 1, Poor: 0.5, Reverse: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.threshold.Ordered())
		})
	}
}

func TestDefaultCategoryWeights(t *testing.T) {
	weights := GetDefaultCategoryWeights()

	var sum float64
	for _, w := range weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.001)
	assert.Equal(t, 0.30, weights[AssetQuality], "asset quality carries the largest weight")
}

func TestRatingBandsDescending(t *testing.T) {
	for i := 1; i < len(RatingBands); i++ {
		assert.Greater(t, RatingBands[i-1].Min, RatingBands[i].Min)
	}
	assert.Equal(t, "AAA", RatingBands[0].Rating)
	assert.Equal(t, "CCC", RatingBands[len(RatingBands)-1].Rating)
	assert.Equal(t, 0.0, RatingBands[len(RatingBands)-1].Min)
}

func TestMetricCatalogCoversScoredMetrics(t *testing.T) {
	catalog := GetMetricCatalog()
	for category, metrics := range GetDefaultScoringConfig() {
		for key := range metrics {
			info, ok := catalog[category][key]
			assert.True(t, ok, "catalog missing %s/%s", category, key)
			assert.NotEmpty(t, info.Name)
			assert.NotNil(t, info.Benchmark)
		}
	}

	// Informational metrics carry no benchmark.
	rwa := catalog[Capitalization][MetricRiskWeighted]
	assert.Nil(t, rwa.Benchmark)
}

func TestInstitutionDataLatest(t *testing.T) {
	data := &InstitutionData{
		Name:  "First Example Bank",
		Years: []int{2022, 2023, 2024},
		Metrics: map[MetricKey][]float64{
			MetricNPL: {1.2, 1.1, 0.9},
			MetricLCR: {},
		},
	}

	value, ok := data.Latest(MetricNPL)
	assert.True(t, ok)
	assert.Equal(t, 0.9, value)

	_, ok = data.Latest(MetricLCR)
	assert.False(t, ok)

	_, ok = data.Latest(MetricROA)
	assert.False(t, ok)

	latest := data.LatestMetrics()
	assert.Equal(t, map[MetricKey]float64{MetricNPL: 0.9}, latest)
}
