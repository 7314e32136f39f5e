// Package analyzer implements the spot availability recommendation engine.
// It fuses spot price history, On-Demand pricing, estimated interruption
// rates, and availability-zone coverage into a single confidence score,
// then applies conjunctive threshold gates to decide availability.
package analyzer

import (
	"context"
	"fmt"

	"github.com/varadharajaan/spot-advisor/pkg/catalog"
	"github.com/varadharajaan/spot-advisor/pkg/interruption"
	"github.com/varadharajaan/spot-advisor/pkg/pricing"
)

// PriceSource supplies spot and On-Demand price data for one region.
// awsapi.Client implements it; tests inject fakes.
type PriceSource interface {
	FetchSpotPriceHistory(ctx context.Context, instanceType string, lookbackDays int) (*pricing.Observation, error)
	FetchOnDemandPrice(ctx context.Context, instanceType string) float64
}

// ZoneSource lists the available zones of one region.
type ZoneSource interface {
	AvailabilityZones(ctx context.Context) ([]string, error)
}

// Thresholds holds the gate constants and lookback window of an analysis.
// The defaults encode a hand-tuned policy; deployments may tune them.
type Thresholds struct {
	MinSavingsPercent   float64 // minimum savings vs On-Demand to qualify
	MaxInterruptionRate float64 // maximum tolerated interruption probability
	MinScore            float64 // minimum composite recommendation score
	AZSaturation        int     // zone count at which AZ coverage saturates
	LookbackDays        int     // spot price history window
}

// DefaultThresholds returns the standard gate policy: 15% minimum savings,
// 15% maximum interruption rate, 0.4 minimum score, 3-zone saturation,
// 7-day price history.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSavingsPercent:   15,
		MaxInterruptionRate: 0.15,
		MinScore:            0.4,
		AZSaturation:        3,
		LookbackDays:        7,
	}
}

// Result is the outcome of one availability analysis. It is immutable
// after construction and always well-formed: negative outcomes are encoded
// in Available and Reasons, never as errors.
type Result struct {
	InstanceType     string   `json:"instance_type" yaml:"instance_type"`
	Region           string   `json:"region" yaml:"region"`
	Available        bool     `json:"is_available" yaml:"is_available"`
	Zones            []string `json:"availability_zones" yaml:"availability_zones"`
	CurrentPrice     float64  `json:"current_price" yaml:"current_price"`
	OnDemandPrice    float64  `json:"on_demand_price" yaml:"on_demand_price"`
	SavingsPercent   float64  `json:"savings_percent" yaml:"savings_percent"`
	InterruptionRate float64  `json:"interruption_rate" yaml:"interruption_rate"`
	Score            float64  `json:"recommendation_score" yaml:"recommendation_score"`
	Reasons          []string `json:"reasons" yaml:"reasons"`
}

// Analyzer scores spot availability for instance types in one region.
// It holds no mutable state, so a single Analyzer is safe for concurrent
// use as long as its sources are.
type Analyzer struct {
	catalog    *catalog.Catalog
	prices     PriceSource
	zones      ZoneSource
	region     string
	thresholds Thresholds
}

// New creates an analyzer for one region.
func New(cat *catalog.Catalog, prices PriceSource, zones ZoneSource, region string, thresholds Thresholds) *Analyzer {
	return &Analyzer{
		catalog:    cat,
		prices:     prices,
		zones:      zones,
		region:     region,
		thresholds: thresholds,
	}
}

// AnalyzeAvailability produces an availability decision for one instance
// type. It never fails: missing data and API errors are folded into a
// negative result whose Reasons list explains the outcome.
func (a *Analyzer) AnalyzeAvailability(ctx context.Context, instanceType string) *Result {
	result := &Result{
		InstanceType: instanceType,
		Region:       a.region,
	}

	if _, ok := a.catalog.Lookup(instanceType); !ok {
		result.Reasons = append(result.Reasons, fmt.Sprintf("unsupported instance type: %s", instanceType))
		return result
	}

	regionZones, err := a.zones.AvailabilityZones(ctx)
	if err != nil {
		result.Reasons = append(result.Reasons, fmt.Sprintf("availability zone lookup failed: %v", err))
		return result
	}
	if len(regionZones) == 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf("no availability zones in %s", a.region))
		return result
	}

	obs, obsErr := a.prices.FetchSpotPriceHistory(ctx, instanceType, a.thresholds.LookbackDays)
	if obsErr != nil {
		obs = &pricing.Observation{InstanceType: instanceType, Region: a.region}
		result.Reasons = append(result.Reasons, fmt.Sprintf("no spot price data: %v", obsErr))
	}

	result.Zones = obs.Zones()
	result.CurrentPrice = obs.Current()
	result.OnDemandPrice = a.prices.FetchOnDemandPrice(ctx, instanceType)
	result.SavingsPercent = SavingsPercent(result.OnDemandPrice, result.CurrentPrice)
	result.InterruptionRate = interruption.EstimateRate(instanceType)
	result.Score = a.score(obs, result.SavingsPercent, result.InterruptionRate, len(result.Zones))

	a.applyGates(result, obsErr == nil)

	return result
}

// score computes the weighted composite recommendation score, clamped
// to [0, 1].
func (a *Analyzer) score(obs *pricing.Observation, savingsPct, interruptionRate float64, zoneCount int) float64 {
	composite := StabilityWeight*stabilityScore(obs) +
		SavingsWeight*savingsScore(savingsPct) +
		InterruptionWeight*interruptionScore(interruptionRate) +
		AZCoverageWeight*azCoverageScore(zoneCount, a.thresholds.AZSaturation)

	return clamp01(composite)
}

// applyGates appends the per-gate audit trail and sets Available. The gate
// is conjunctive: failing any single threshold disqualifies the type no
// matter how well it scores elsewhere.
func (a *Analyzer) applyGates(result *Result, haveSpotData bool) {
	passed := true

	if len(result.Zones) == 0 {
		passed = false
		if haveSpotData {
			result.Reasons = append(result.Reasons, "no zones with spot coverage")
		}
	} else {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("spot prices observed in %d zone(s)", len(result.Zones)))
	}

	if result.CurrentPrice <= 0 {
		passed = false
		result.Reasons = append(result.Reasons, "no current spot price")
	} else {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("current spot $%.4f/hr vs on-demand $%.4f/hr", result.CurrentPrice, result.OnDemandPrice))
	}

	if result.SavingsPercent < a.thresholds.MinSavingsPercent {
		passed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("savings %.1f%% below minimum %.1f%%", result.SavingsPercent, a.thresholds.MinSavingsPercent))
	} else {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("savings %.1f%% meets minimum %.1f%%", result.SavingsPercent, a.thresholds.MinSavingsPercent))
	}

	if result.InterruptionRate > a.thresholds.MaxInterruptionRate {
		passed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("interruption rate %.1f%% above maximum %.1f%%",
				result.InterruptionRate*100, a.thresholds.MaxInterruptionRate*100))
	} else {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("estimated interruption rate %.1f%%", result.InterruptionRate*100))
	}

	if result.Score < a.thresholds.MinScore {
		passed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("recommendation score %.2f below minimum %.2f", result.Score, a.thresholds.MinScore))
	} else {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("recommendation score %.2f", result.Score))
	}

	result.Available = passed
}
