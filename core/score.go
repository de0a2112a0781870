// Package core implements the credit scoring engine and derived analytics.
package core

import (
	"math"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
)

// scoreMetric maps a raw metric value onto the 1-10 scale using the
// piecewise-linear breakpoints in t. The segments are continuous at the
// breakpoints: good maps to 7, fair to 5 and poor to 2.
// Below poor, regular metrics degrade proportionally (1 + value/poor)
// while reverse metrics flatten at 1.
func scoreMetric(value float64, t schema.MetricThreshold) float64 {
	if t.Reverse { // Lower values are better
		switch {
		case value <= t.Excellent:
			return 10
		case value <= t.Good:
			return 7 + 3*(t.Good-value)/(t.Good-t.Excellent)
		case value <= t.Fair:
			return 5 + 2*(t.Fair-value)/(t.Fair-t.Good)
		case value <= t.Poor:
			return 2 + 3*(t.Poor-value)/(t.Poor-t.Fair)
		default:
			return 1
		}
	}

	// Higher values are better
	switch {
	case value >= t.Excellent:
		return 10
	case value >= t.Good:
		return 7 + 3*(value-t.Good)/(t.Excellent-t.Good)
	case value >= t.Fair:
		return 5 + 2*(value-t.Fair)/(t.Good-t.Fair)
	case value >= t.Poor:
		return 2 + 3*(value-t.Poor)/(t.Fair-t.Poor)
	default:
		if t.Poor > 0 {
			return 1 + value/t.Poor
		}
		return 1
	}
}

// clampScore bounds a score to the 1-10 scale.
func clampScore(score float64) float64 {
	return math.Min(10.0, math.Max(1.0, score))
}

// ScoreCategory computes the weighted score for one category. Every
// configured metric must be present in the input: a record with any
// absent metric fails with MissingMetricError listing the absent keys.
// Missing data never silently defaults to zero.
func ScoreCategory(metrics map[schema.MetricKey]float64, category schema.Category, cfg schema.CategoryConfig) (schema.CategoryResult, error) {
	breakdown := make(map[schema.MetricKey]float64, len(cfg))
	var missing []schema.MetricKey

	var weightedSum, weightSum float64
	for key, threshold := range cfg {
		value, ok := metrics[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		metricScore := scoreMetric(value, threshold)
		breakdown[key] = metricScore
		weightedSum += metricScore * threshold.Weight
		weightSum += threshold.Weight
	}

	if len(missing) > 0 {
		return schema.CategoryResult{}, &contract.MissingMetricError{Category: category, Missing: missing}
	}

	return schema.CategoryResult{
		Score:     clampScore(weightedSum / weightSum),
		Breakdown: breakdown,
	}, nil
}

// ScoreAllCategories scores every configured category, propagating the
// first MissingMetricError instead of scoring an incomplete record.
func ScoreAllCategories(metrics map[schema.MetricKey]float64, model schema.ScoringConfig) (map[schema.Category]schema.CategoryResult, error) {
	results := make(map[schema.Category]schema.CategoryResult, len(model))
	for category, cfg := range model {
		result, err := ScoreCategory(metrics, category, cfg)
		if err != nil {
			return nil, err
		}
		results[category] = result
	}
	return results, nil
}

// ScoreOverallWeighted combines category scores with the overall category
// weights. Missing categories are dropped and the remaining weights
// renormalized.
func ScoreOverallWeighted(categories map[schema.Category]schema.CategoryResult, weights map[schema.Category]float64) float64 {
	var weightedSum, weightSum float64
	for category, result := range categories {
		weight, ok := weights[category]
		if !ok {
			continue
		}
		weightedSum += result.Score * weight
		weightSum += weight
	}
	if weightSum == 0 {
		return 0
	}
	return clampScore(weightedSum / weightSum)
}

// ScoreOverallMean is the unweighted mean of the present category scores.
// It intentionally coexists with ScoreOverallWeighted: the weighted score
// drives ratings and rankings while the mean serves as a plain composite.
func ScoreOverallMean(categories map[schema.Category]schema.CategoryResult) float64 {
	if len(categories) == 0 {
		return 0
	}
	var sum float64
	for _, result := range categories {
		sum += result.Score
	}
	return sum / float64(len(categories))
}

// InterpretScore maps an overall score to its rating band.
func InterpretScore(score float64) schema.RatingBand {
	for _, band := range schema.RatingBands {
		if score >= band.Min {
			return band
		}
	}
	return schema.RatingBands[len(schema.RatingBands)-1]
}
