package model

import "math"

// ArgMax returns the index of the largest probability, or -1 for an empty slice.
func ArgMax(probabilities []float64) int {
	best := -1
	for i, p := range probabilities {
		if best == -1 || p > probabilities[best] {
			best = i
		}
	}
	return best
}

// Confidence is the probability of the most likely class.
func Confidence(probabilities []float64) float64 {
	idx := ArgMax(probabilities)
	if idx < 0 {
		return 0
	}
	return probabilities[idx]
}

// CumulativeRisk sums the probability mass from Sobrepeso G. I onward,
// clamped to [0, 1] to absorb float noise.
func CumulativeRisk(probabilities []float64) float64 {
	if len(probabilities) <= RiskStartIndex {
		return 0
	}
	var sum float64
	for _, p := range probabilities[RiskStartIndex:] {
		sum += p
	}
	return math.Min(1, math.Max(0, sum))
}
