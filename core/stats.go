package core

import "math"

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the sample standard deviation of values (n-1 denominator).
// Returns 0 for fewer than two points.
func stddev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		diff := v - m
		sq += diff * diff
	}
	return math.Sqrt(sq / float64(n-1))
}

// trend returns the total change across a series (last minus first).
// Used for multi-year direction checks in the heuristics.
func trend(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return values[len(values)-1] - values[0]
}

// yoyChangePct returns the year-over-year percentage change between the last
// two points of a series. The second return value is false when the series
// is too short or the prior value is zero.
func yoyChangePct(values []float64) (float64, bool) {
	n := len(values)
	if n < 2 || values[n-2] == 0 {
		return 0, false
	}
	return (values[n-1] - values[n-2]) / values[n-2] * 100, true
}
