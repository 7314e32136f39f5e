package alternatives

import (
	"context"
	"fmt"
)

// Weights for the overall score. Availability and raw cost are scaled up
// to be commensurate with the performance and cost-efficiency magnitudes,
// which keeps the score comparative rather than normalized.
const (
	performanceWeight    = 0.3
	costEfficiencyWeight = 0.3
	availabilityWeight   = 0.25
	rawCostWeight        = 0.15

	availabilityScale = 100
	rawCostScale      = 10

	// Zone count at which the probe's coverage term saturates.
	probeZoneSaturation = 3
)

// scoreCandidate builds a ranked Alternative for one pool candidate. Any
// failure here drops the candidate, not the batch.
func (f *Finder) scoreCandidate(ctx context.Context, cand poolCandidate) (Alternative, error) {
	if err := ctx.Err(); err != nil {
		return Alternative{}, fmt.Errorf("probe %s: %w", cand.spec.InstanceType, err)
	}

	availability := f.probeAvailability(ctx, cand.spec.InstanceType)

	price := f.prices.FetchOnDemandPrice(ctx, cand.spec.InstanceType)
	if price <= 0 {
		return Alternative{}, fmt.Errorf("non-positive on-demand price for %s", cand.spec.InstanceType)
	}

	perf := cand.spec.Performance
	overall := perf*performanceWeight +
		(perf/price)*costEfficiencyWeight +
		availability*availabilityScale*availabilityWeight +
		(rawCostScale/price)*rawCostWeight

	return Alternative{
		InstanceType:      cand.spec.InstanceType,
		Family:            cand.spec.Family,
		VCPUs:             cand.spec.VCPUs,
		MemoryGiB:         cand.spec.MemoryGiB,
		Performance:       perf,
		HourlyCost:        price,
		AvailabilityScore: availability,
		OverallScore:      overall,
		Reason:            cand.reason,
	}, nil
}

// probeAvailability runs the lightweight spot probe. With spot data and a
// live price the score floors at 0.3; data without a price halves the
// coverage term; no data at all is scored neutral.
func (f *Finder) probeAvailability(ctx context.Context, instanceType string) float64 {
	obs, err := f.prices.FetchSpotPriceHistory(ctx, instanceType, f.opts.ProbeLookbackDays)
	if err != nil {
		return 0.5
	}

	coverage := float64(len(obs.Zones())) / probeZoneSaturation
	if coverage > 1 {
		coverage = 1
	}

	if obs.Current() <= 0 {
		return coverage * 0.5
	}
	return coverage*0.7 + 0.3
}
