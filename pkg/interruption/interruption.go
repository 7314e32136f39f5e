// Package interruption estimates how likely a Spot instance is to be
// reclaimed within a given period. The model is a deterministic heuristic:
// a per-family base rate scaled by an instance-size multiplier. It performs
// no network access, so repeated calls for the same type are identical.
package interruption

import (
	"strings"

	"github.com/varadharajaan/spot-advisor/pkg/catalog"
)

// DefaultBaseRate is used for families absent from FamilyBaseRates.
const DefaultBaseRate = 0.05

// FamilyBaseRates maps instance families to estimated baseline interruption
// probabilities. Compute-optimized families interrupt least, memory-optimized
// most, burstable sit in between.
var FamilyBaseRates = map[string]float64{
	// Compute optimized
	"c5":  0.030,
	"c5a": 0.030,
	"c6a": 0.025,
	"c6i": 0.025,
	"c7g": 0.022,
	"c7i": 0.025,

	// General purpose
	"m5":  0.045,
	"m5a": 0.045,
	"m6i": 0.040,
	"m7i": 0.040,

	// Memory optimized
	"r5":  0.060,
	"r5a": 0.060,
	"r6i": 0.055,

	// Burstable
	"t2":  0.050,
	"t3":  0.050,
	"t3a": 0.050,
	"t4g": 0.040,
}

// sizeMultipliers adjusts the family base rate by instance size. Larger
// instances are reclaimed less often; the tiniest sizes slightly more.
var sizeMultipliers = map[string]float64{
	"nano":  1.1,
	"micro": 1.1,

	"large":  0.90,
	"xlarge": 0.85,

	"2xlarge": 0.80,

	"4xlarge":  0.70,
	"8xlarge":  0.70,
	"9xlarge":  0.70,
	"12xlarge": 0.70,
	"16xlarge": 0.70,
	"24xlarge": 0.70,
	"32xlarge": 0.70,
	"48xlarge": 0.70,
	"metal":    0.70,
}

// EstimateRate returns the estimated interruption probability for an
// instance type. Unknown families and sizes still produce a plausible
// estimate; there is no error path.
func EstimateRate(instanceType string) float64 {
	family := catalog.ExtractFamily(strings.TrimSpace(instanceType))

	base, ok := FamilyBaseRates[family]
	if !ok {
		base = DefaultBaseRate
	}

	return base * sizeMultiplier(catalog.ExtractSize(instanceType))
}

func sizeMultiplier(size string) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return 1.0
}
