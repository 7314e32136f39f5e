// Package pricing holds the price data model for spot analysis: observed
// spot price samples with their derived aggregates, and the static
// on-demand fallback table used when the live Pricing API is unavailable.
package pricing

import (
	"math"
	"sort"
	"time"
)

// Sample is one spot price observation in one availability zone.
type Sample struct {
	Price            float64   `json:"price" yaml:"price"`
	AvailabilityZone string    `json:"availability_zone" yaml:"availability_zone"`
	Timestamp        time.Time `json:"timestamp" yaml:"timestamp"`
}

// Observation is the set of spot price samples collected for one instance
// type in one region over a lookback window. It is fetched fresh per
// analysis call and never cached by this package.
type Observation struct {
	InstanceType string   `json:"instance_type" yaml:"instance_type"`
	Region       string   `json:"region" yaml:"region"`
	Samples      []Sample `json:"samples" yaml:"samples"`
}

// Current returns the most recent sample's price, or 0 with no samples.
func (o *Observation) Current() float64 {
	var latest *Sample
	for i := range o.Samples {
		if latest == nil || o.Samples[i].Timestamp.After(latest.Timestamp) {
			latest = &o.Samples[i]
		}
	}
	if latest == nil {
		return 0
	}
	return latest.Price
}

// Average returns the mean price across all samples, or 0 with no samples.
func (o *Observation) Average() float64 {
	if len(o.Samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range o.Samples {
		sum += s.Price
	}
	return sum / float64(len(o.Samples))
}

// Min returns the lowest sampled price, or 0 with no samples.
func (o *Observation) Min() float64 {
	if len(o.Samples) == 0 {
		return 0
	}
	min := o.Samples[0].Price
	for _, s := range o.Samples[1:] {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}

// Max returns the highest sampled price, or 0 with no samples.
func (o *Observation) Max() float64 {
	var max float64
	for _, s := range o.Samples {
		if s.Price > max {
			max = s.Price
		}
	}
	return max
}

// Volatility returns the population standard deviation of sampled prices.
func (o *Observation) Volatility() float64 {
	if len(o.Samples) == 0 {
		return 0
	}
	avg := o.Average()
	var sumSq float64
	for _, s := range o.Samples {
		d := s.Price - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(o.Samples)))
}

// Zones returns the distinct availability zones observed, sorted.
func (o *Observation) Zones() []string {
	seen := make(map[string]bool)
	for _, s := range o.Samples {
		if s.AvailabilityZone != "" {
			seen[s.AvailabilityZone] = true
		}
	}
	zones := make([]string, 0, len(seen))
	for zone := range seen {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}
