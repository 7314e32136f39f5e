package pricing

import "strings"

// DefaultOnDemandRate is returned for instance types absent from the
// fallback table. A non-zero default keeps savings math well-defined even
// for unknown types.
const DefaultOnDemandRate = 0.05

// FallbackTable maps instance types to approximate On-Demand hourly rates.
// It is the degradation path when the live Pricing API fails or returns
// nothing: slightly stale numbers beat an unavailable pipeline.
type FallbackTable map[string]float64

// DefaultFallback holds approximate us-east-1 On-Demand rates.
// Prices are approximate and subject to change.
var DefaultFallback = FallbackTable{
	"t3.micro":   0.0104,
	"t3.small":   0.0208,
	"t3.medium":  0.0416,
	"t3.large":   0.0832,
	"t4g.micro":  0.0084,
	"t4g.small":  0.0168,
	"t4g.medium": 0.0336,
	"t4g.large":  0.0672,

	"m5.large":    0.096,
	"m5.xlarge":   0.192,
	"m5.2xlarge":  0.384,
	"m6i.large":   0.096,
	"m6i.xlarge":  0.192,
	"m6i.2xlarge": 0.384,
	"m7i.large":   0.1008,
	"m7i.xlarge":  0.2016,

	"c5.large":    0.085,
	"c5.xlarge":   0.17,
	"c5.2xlarge":  0.34,
	"c6a.large":   0.0765,
	"c6a.xlarge":  0.153,
	"c6a.2xlarge": 0.306,
	"c6a.4xlarge": 0.612,
	"c6i.large":   0.085,
	"c6i.xlarge":  0.17,
	"c7g.large":   0.0725,
	"c7g.xlarge":  0.145,

	"r5.large":    0.126,
	"r5.xlarge":   0.252,
	"r5.2xlarge":  0.504,
	"r6i.large":   0.126,
	"r6i.xlarge":  0.252,
	"r6i.2xlarge": 0.504,
}

// Rate returns the fallback On-Demand rate for an instance type. Unknown
// types return DefaultOnDemandRate; the result is always > 0.
func (t FallbackTable) Rate(instanceType string) float64 {
	instanceType = strings.ToLower(strings.TrimSpace(instanceType))
	if rate, ok := t[instanceType]; ok && rate > 0 {
		return rate
	}
	return DefaultOnDemandRate
}
