// Package alternatives searches the instance catalog for substitutes of a
// target instance type and ranks them by a weighted composite score. The
// score is comparative only: it ranks candidates within one call and has
// no meaning as an absolute quality measure.
package alternatives

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/varadharajaan/spot-advisor/pkg/analyzer"
	"github.com/varadharajaan/spot-advisor/pkg/catalog"
)

// Candidate pool reasons, surfaced on each ranked alternative.
const (
	ReasonSameFamily         = "Same family alternative"
	ReasonSimilarPerformance = "Similar performance"
	ReasonCostEffective      = "Cost-effective option"
)

// Alternative is one ranked substitution candidate.
type Alternative struct {
	InstanceType      string  `json:"instance_type" yaml:"instance_type"`
	Family            string  `json:"family" yaml:"family"`
	VCPUs             int32   `json:"vcpus" yaml:"vcpus"`
	MemoryGiB         float64 `json:"memory_gib" yaml:"memory_gib"`
	Performance       float64 `json:"performance" yaml:"performance"`
	HourlyCost        float64 `json:"hourly_cost" yaml:"hourly_cost"`
	AvailabilityScore float64 `json:"availability_score" yaml:"availability_score"`
	OverallScore      float64 `json:"overall_score" yaml:"overall_score"`
	Reason            string  `json:"reason" yaml:"reason"`
}

// Options tunes the candidate search.
type Options struct {
	ProbeLookbackDays       int     // spot history window for the quick probe
	PerformanceTolerance    float64 // relative tolerance for the similar-performance pass
	MinPerformanceTolerance float64 // absolute floor on the tolerance band
	MaxCostRatio            float64 // cost-effective pass price ceiling vs target
	CostPassLimit           int     // entries examined in the cost-effective pass
	Parallelism             int     // probe workers; <= 1 runs sequentially
	Verbose                 bool
}

// DefaultOptions returns the standard search settings: 2-day probe window,
// 30% performance band (minimum 1 unit), 1.5x cost ceiling over at most 10
// candidates, sequential probing.
func DefaultOptions() Options {
	return Options{
		ProbeLookbackDays:       2,
		PerformanceTolerance:    0.30,
		MinPerformanceTolerance: 1,
		MaxCostRatio:            1.5,
		CostPassLimit:           10,
		Parallelism:             1,
	}
}

// Finder searches for instance type alternatives.
type Finder struct {
	catalog *catalog.Catalog
	prices  analyzer.PriceSource
	opts    Options
}

// NewFinder creates a finder over a catalog and price source.
func NewFinder(cat *catalog.Catalog, prices analyzer.PriceSource, opts Options) *Finder {
	return &Finder{catalog: cat, prices: prices, opts: opts}
}

type poolCandidate struct {
	spec   catalog.InstanceSpec
	reason string
}

// scored pairs a candidate with its scoring outcome so per-candidate
// failures stay observable instead of silently vanishing.
type scored struct {
	alt Alternative
	err error
}

// FindAlternatives returns up to maxResults substitution candidates for the
// target type, sorted by descending overall score. An unknown target yields
// an empty list. Per-candidate scoring failures drop that candidate only;
// partial results are preferred over total failure.
func (f *Finder) FindAlternatives(ctx context.Context, target string, maxResults int) []Alternative {
	targetSpec, ok := f.catalog.Lookup(target)
	if !ok {
		return nil
	}

	candidates := f.gatherCandidates(ctx, targetSpec)
	results := f.scoreAll(ctx, candidates)

	alternatives := make([]Alternative, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			if f.opts.Verbose {
				fmt.Fprintf(os.Stderr, "  Warning: dropped candidate: %v\n", r.err)
			}
			continue
		}
		alternatives = append(alternatives, r.alt)
	}

	sort.Slice(alternatives, func(i, j int) bool {
		if alternatives[i].OverallScore != alternatives[j].OverallScore {
			return alternatives[i].OverallScore > alternatives[j].OverallScore
		}
		return alternatives[i].InstanceType < alternatives[j].InstanceType
	})

	if maxResults > 0 && len(alternatives) > maxResults {
		alternatives = alternatives[:maxResults]
	}
	return alternatives
}

// gatherCandidates builds the candidate pool in three non-exclusive passes.
// A candidate discovered by an earlier pass is not re-added by later ones.
func (f *Finder) gatherCandidates(ctx context.Context, target catalog.InstanceSpec) []poolCandidate {
	var pool []poolCandidate
	selected := map[string]bool{target.InstanceType: true}

	// Pass 1: same family.
	for _, spec := range f.catalog.Family(target.Family) {
		if selected[spec.InstanceType] {
			continue
		}
		selected[spec.InstanceType] = true
		pool = append(pool, poolCandidate{spec: spec, reason: ReasonSameFamily})
	}

	// Pass 2: similar performance from other families.
	tolerance := target.Performance * f.opts.PerformanceTolerance
	if tolerance < f.opts.MinPerformanceTolerance {
		tolerance = f.opts.MinPerformanceTolerance
	}
	for _, spec := range f.catalog.Specs() {
		if selected[spec.InstanceType] || spec.Family == target.Family {
			continue
		}
		diff := spec.Performance - target.Performance
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			continue
		}
		selected[spec.InstanceType] = true
		pool = append(pool, poolCandidate{spec: spec, reason: ReasonSimilarPerformance})
	}

	// Pass 3: cost-effective remainder, bounded to limit pricing lookups.
	targetPrice := f.prices.FetchOnDemandPrice(ctx, target.InstanceType)
	examined := 0
	for _, spec := range f.catalog.Specs() {
		if selected[spec.InstanceType] {
			continue
		}
		if examined >= f.opts.CostPassLimit {
			break
		}
		examined++

		price := f.prices.FetchOnDemandPrice(ctx, spec.InstanceType)
		if targetPrice > 0 && price > targetPrice*f.opts.MaxCostRatio {
			continue
		}
		selected[spec.InstanceType] = true
		pool = append(pool, poolCandidate{spec: spec, reason: ReasonCostEffective})
	}

	return pool
}

// scoreAll scores every candidate, in parallel when Parallelism > 1.
// Candidates share no mutable state, so the parallel map is safe.
func (f *Finder) scoreAll(ctx context.Context, candidates []poolCandidate) []scored {
	if f.opts.Parallelism <= 1 || len(candidates) < 2 {
		results := make([]scored, 0, len(candidates))
		for _, cand := range candidates {
			alt, err := f.scoreCandidate(ctx, cand)
			results = append(results, scored{alt: alt, err: err})
		}
		return results
	}

	pool, err := ants.NewPool(f.opts.Parallelism)
	if err != nil {
		// Pool construction failed; score sequentially instead.
		results := make([]scored, 0, len(candidates))
		for _, cand := range candidates {
			alt, err := f.scoreCandidate(ctx, cand)
			results = append(results, scored{alt: alt, err: err})
		}
		return results
	}
	defer pool.Release()

	var (
		results = make([]scored, len(candidates))
		wg      sync.WaitGroup
	)
	for i, cand := range candidates {
		i, cand := i, cand
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			alt, err := f.scoreCandidate(ctx, cand)
			results[i] = scored{alt: alt, err: err}
		})
		if submitErr != nil {
			results[i] = scored{err: fmt.Errorf("probe %s: %w", cand.spec.InstanceType, submitErr)}
			wg.Done()
		}
	}
	wg.Wait()

	return results
}
