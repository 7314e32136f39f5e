package analyzer

import "github.com/varadharajaan/spot-advisor/pkg/pricing"

// Weights for the composite recommendation score. Savings dominate, but
// price stability and interruption risk together outweigh it; AZ coverage
// is the smallest factor.
const (
	StabilityWeight    = 0.25
	SavingsWeight      = 0.35
	InterruptionWeight = 0.25
	AZCoverageWeight   = 0.15

	// Savings beyond this percentage stop improving the score.
	savingsSaturationPct = 70

	// Interruption rates at or above this saturate the risk score at 0.
	interruptionCeiling = 0.2
)

// SavingsPercent computes ((onDemand - spot) / onDemand) * 100, or 0 when
// either price is non-positive.
func SavingsPercent(onDemand, spot float64) float64 {
	if onDemand <= 0 || spot <= 0 {
		return 0
	}
	return (onDemand - spot) / onDemand * 100
}

// stabilityScore rewards low price volatility relative to the average
// price. No price data scores 0.
func stabilityScore(obs *pricing.Observation) float64 {
	avg := obs.Average()
	if avg <= 0 {
		return 0
	}
	ratio := obs.Volatility() / avg
	if ratio > 1 {
		ratio = 1
	}
	return max0(1 - ratio)
}

// savingsScore scales savings linearly up to the saturation point.
func savingsScore(savingsPct float64) float64 {
	if savingsPct < 0 {
		savingsPct = 0
	}
	score := savingsPct / savingsSaturationPct
	if score > 1 {
		return 1
	}
	return score
}

// interruptionScore rewards low interruption probability.
func interruptionScore(rate float64) float64 {
	return max0(1 - rate/interruptionCeiling)
}

// azCoverageScore rewards multi-zone coverage, saturating at the
// configured zone count.
func azCoverageScore(zoneCount, saturation int) float64 {
	if saturation <= 0 {
		saturation = 1
	}
	score := float64(zoneCount) / float64(saturation)
	if score > 1 {
		return 1
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
