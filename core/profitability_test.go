package core

import (
	"testing"

	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/assert"
)

func TestProfitabilityComposite(t *testing.T) {
	// Everything at or above the good breakpoints scores a full 10.
	strong := map[schema.MetricKey]float64{
		schema.MetricROA: 1.5,
		schema.MetricROE: 14,
		schema.MetricNIM: 3.8,
		schema.MetricEPS: 9,
	}
	assert.InDelta(t, 10.0, ProfitabilityComposite(strong), 1e-9)

	// Everything exactly at fair interpolates to 5 on each lens.
	middling := map[schema.MetricKey]float64{
		schema.MetricROA: 0.8,
		schema.MetricROE: 8,
		schema.MetricNIM: 2.5,
		schema.MetricEPS: 5,
	}
	assert.InDelta(t, 5.0, ProfitabilityComposite(middling), 1e-9)

	// Zeros floor each lens at 1.
	assert.InDelta(t, 1.0, ProfitabilityComposite(map[schema.MetricKey]float64{}), 1e-9)
}

func TestProfitabilityCompositeOrdering(t *testing.T) {
	weaker := map[schema.MetricKey]float64{
		schema.MetricROA: 0.6,
		schema.MetricROE: 6,
		schema.MetricNIM: 2.0,
		schema.MetricEPS: 3,
	}
	stronger := map[schema.MetricKey]float64{
		schema.MetricROA: 1.0,
		schema.MetricROE: 10,
		schema.MetricNIM: 3.0,
		schema.MetricEPS: 6,
	}
	assert.Less(t, ProfitabilityComposite(weaker), ProfitabilityComposite(stronger))
}

func TestEfficiencyScore(t *testing.T) {
	tests := []struct {
		cir  float64
		want float64
	}{
		{45, 10},
		{50, 10},
		{55, 9},
		{60, 8},
		{65, 6.5},
		{70, 5},
		{75, 3.5},
		{80, 2},
		{85, 1},
		{89, 1},
		{95, 1},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, EfficiencyScore(tc.cir), 1e-9, "cir %v", tc.cir)
	}
}
