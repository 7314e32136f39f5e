package analyzer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/varadharajaan/spot-advisor/pkg/catalog"
	"github.com/varadharajaan/spot-advisor/pkg/pricing"
)

func floatEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

type fakePriceSource struct {
	obs      *pricing.Observation
	obsErr   error
	onDemand float64
}

func (f *fakePriceSource) FetchSpotPriceHistory(ctx context.Context, instanceType string, lookbackDays int) (*pricing.Observation, error) {
	if f.obsErr != nil {
		return nil, f.obsErr
	}
	return f.obs, nil
}

func (f *fakePriceSource) FetchOnDemandPrice(ctx context.Context, instanceType string) float64 {
	return f.onDemand
}

type fakeZoneSource struct {
	zones []string
	err   error
}

func (f *fakeZoneSource) AvailabilityZones(ctx context.Context) ([]string, error) {
	return f.zones, f.err
}

// observation builds a flat-price observation across the given zones.
func observation(instanceType string, price float64, zones ...string) *pricing.Observation {
	obs := &pricing.Observation{InstanceType: instanceType, Region: "us-east-1"}
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, zone := range zones {
		obs.Samples = append(obs.Samples, pricing.Sample{
			Price:            price,
			AvailabilityZone: zone,
			Timestamp:        base.Add(time.Duration(i) * time.Hour),
		})
	}
	return obs
}

func newTestAnalyzer(prices PriceSource, zones ZoneSource, thresholds Thresholds) *Analyzer {
	return New(catalog.Default(), prices, zones, "us-east-1", thresholds)
}

func TestAnalyzeAvailabilityUnsupportedType(t *testing.T) {
	prices := &fakePriceSource{onDemand: 0.1}
	zones := &fakeZoneSource{zones: []string{"us-east-1a"}}
	a := newTestAnalyzer(prices, zones, DefaultThresholds())

	result := a.AnalyzeAvailability(context.Background(), "z9.bogus")

	if result.Available {
		t.Error("Available = true, want false")
	}
	if result.CurrentPrice != 0 || result.OnDemandPrice != 0 || result.SavingsPercent != 0 ||
		result.InterruptionRate != 0 || result.Score != 0 {
		t.Errorf("numeric fields not zeroed: %+v", result)
	}
	if len(result.Zones) != 0 {
		t.Errorf("Zones = %v, want empty", result.Zones)
	}
	if len(result.Reasons) == 0 || !strings.Contains(result.Reasons[0], "unsupported instance type") {
		t.Errorf("Reasons = %v, want unsupported instance type", result.Reasons)
	}
}

func TestAnalyzeAvailabilityRecommended(t *testing.T) {
	// t3.micro: 3 AZs of spot at $0.003 vs $0.0104 On-Demand is a
	// textbook recommendation: ~71% savings, low interruption.
	prices := &fakePriceSource{
		obs:      observation("t3.micro", 0.003, "us-east-1a", "us-east-1b", "us-east-1c"),
		onDemand: 0.0104,
	}
	zones := &fakeZoneSource{zones: []string{"us-east-1a", "us-east-1b", "us-east-1c"}}
	a := newTestAnalyzer(prices, zones, DefaultThresholds())

	result := a.AnalyzeAvailability(context.Background(), "t3.micro")

	if !result.Available {
		t.Fatalf("Available = false, want true; reasons: %v", result.Reasons)
	}
	if !floatEqual(result.SavingsPercent, 71.15, 0.01) {
		t.Errorf("SavingsPercent = %v, want ~71.15", result.SavingsPercent)
	}
	if !floatEqual(result.InterruptionRate, 0.055, 1e-9) {
		t.Errorf("InterruptionRate = %v, want 0.055", result.InterruptionRate)
	}
	if len(result.Zones) != 3 {
		t.Errorf("Zones = %v, want 3 zones", result.Zones)
	}
	// Flat prices and saturated savings: 0.25 + 0.35 + 0.25*(1-0.055/0.2) + 0.15
	if !floatEqual(result.Score, 0.93125, 1e-9) {
		t.Errorf("Score = %v, want 0.93125", result.Score)
	}
}

func TestAnalyzeAvailabilityNoPriceHistory(t *testing.T) {
	prices := &fakePriceSource{
		obsErr:   pricingUnavailable("r5.2xlarge"),
		onDemand: 0.504,
	}
	zones := &fakeZoneSource{zones: []string{"us-east-1a", "us-east-1b"}}
	a := newTestAnalyzer(prices, zones, DefaultThresholds())

	result := a.AnalyzeAvailability(context.Background(), "r5.2xlarge")

	if result.Available {
		t.Error("Available = true, want false")
	}
	if result.CurrentPrice != 0 {
		t.Errorf("CurrentPrice = %v, want 0", result.CurrentPrice)
	}
	if result.SavingsPercent != 0 {
		t.Errorf("SavingsPercent = %v, want 0", result.SavingsPercent)
	}
	if !reasonsContain(result.Reasons, "no spot price data") {
		t.Errorf("Reasons = %v, want a no spot price data entry", result.Reasons)
	}
}

func TestAnalyzeAvailabilityNoZonesInRegion(t *testing.T) {
	prices := &fakePriceSource{onDemand: 0.1}
	zones := &fakeZoneSource{zones: nil}
	a := newTestAnalyzer(prices, zones, DefaultThresholds())

	result := a.AnalyzeAvailability(context.Background(), "m5.large")

	if result.Available {
		t.Error("Available = true, want false")
	}
	if !reasonsContain(result.Reasons, "no availability zones") {
		t.Errorf("Reasons = %v, want a no availability zones entry", result.Reasons)
	}
}

// TestAnalyzeAvailabilityGates flips each gate independently and asserts
// the conjunctive decision fails.
func TestAnalyzeAvailabilityGates(t *testing.T) {
	regionZones := []string{"us-east-1a", "us-east-1b", "us-east-1c"}

	tests := []struct {
		name       string
		prices     *fakePriceSource
		thresholds func() Thresholds
		wantReason string
	}{
		{
			name: "no zones with spot coverage",
			prices: &fakePriceSource{
				// Samples without zone labels: price exists, coverage does not.
				obs:      observation("t3.micro", 0.003, ""),
				onDemand: 0.0104,
			},
			thresholds: DefaultThresholds,
			wantReason: "no zones with spot coverage",
		},
		{
			name: "zero current price",
			prices: &fakePriceSource{
				obs:      observation("t3.micro", 0, "us-east-1a", "us-east-1b", "us-east-1c"),
				onDemand: 0.0104,
			},
			thresholds: DefaultThresholds,
			wantReason: "no current spot price",
		},
		{
			name: "insufficient savings",
			prices: &fakePriceSource{
				obs:      observation("t3.micro", 0.0095, "us-east-1a", "us-east-1b", "us-east-1c"),
				onDemand: 0.0104,
			},
			thresholds: DefaultThresholds,
			wantReason: "below minimum",
		},
		{
			name: "interruption rate too high",
			prices: &fakePriceSource{
				obs:      observation("t3.micro", 0.003, "us-east-1a", "us-east-1b", "us-east-1c"),
				onDemand: 0.0104,
			},
			thresholds: func() Thresholds {
				th := DefaultThresholds()
				th.MaxInterruptionRate = 0.05 // t3.micro estimates at 0.055
				return th
			},
			wantReason: "above maximum",
		},
		{
			name: "score below minimum",
			prices: &fakePriceSource{
				obs:      observation("t3.micro", 0.003, "us-east-1a", "us-east-1b", "us-east-1c"),
				onDemand: 0.0104,
			},
			thresholds: func() Thresholds {
				th := DefaultThresholds()
				th.MinScore = 0.99
				return th
			},
			wantReason: "recommendation score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(tt.prices, &fakeZoneSource{zones: regionZones}, tt.thresholds())

			result := a.AnalyzeAvailability(context.Background(), "t3.micro")

			if result.Available {
				t.Errorf("Available = true, want false; reasons: %v", result.Reasons)
			}
			if !reasonsContain(result.Reasons, tt.wantReason) {
				t.Errorf("Reasons = %v, want an entry containing %q", result.Reasons, tt.wantReason)
			}
		})
	}
}

// TestScoreBounds drives the composite score with extreme inputs and
// asserts the [0, 1] clamp holds.
func TestScoreBounds(t *testing.T) {
	zones := &fakeZoneSource{zones: []string{"us-east-1a", "us-east-1b", "us-east-1c"}}

	tests := []struct {
		name   string
		prices *fakePriceSource
	}{
		{
			name: "extreme savings",
			prices: &fakePriceSource{
				obs:      observation("t3.micro", 0.00001, "us-east-1a", "us-east-1b", "us-east-1c"),
				onDemand: 100,
			},
		},
		{
			name: "negative savings",
			prices: &fakePriceSource{
				obs:      observation("t3.micro", 5, "us-east-1a"),
				onDemand: 0.0104,
			},
		},
		{
			name: "no data at all",
			prices: &fakePriceSource{
				obsErr:   pricingUnavailable("t3.micro"),
				onDemand: 0.0104,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(tt.prices, zones, DefaultThresholds())

			result := a.AnalyzeAvailability(context.Background(), "t3.micro")

			if result.Score < 0 || result.Score > 1 {
				t.Errorf("Score = %v, want within [0, 1]", result.Score)
			}
		})
	}
}

func TestSavingsPercent(t *testing.T) {
	tests := []struct {
		name     string
		onDemand float64
		spot     float64
		want     float64
	}{
		{"typical savings", 0.0104, 0.003, 71.153846},
		{"zero on-demand", 0, 0.003, 0},
		{"zero spot", 0.0104, 0, 0},
		{"negative savings", 0.0104, 0.02, -92.307692},
		{"equal prices", 0.1, 0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsPercent(tt.onDemand, tt.spot)
			if !floatEqual(got, tt.want, 1e-4) {
				t.Errorf("SavingsPercent(%v, %v) = %v, want %v", tt.onDemand, tt.spot, got, tt.want)
			}
		})
	}
}

func reasonsContain(reasons []string, substr string) bool {
	for _, r := range reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

type unavailableError string

func (e unavailableError) Error() string { return string(e) + ": no price history" }

func pricingUnavailable(instanceType string) error {
	return unavailableError(instanceType)
}
