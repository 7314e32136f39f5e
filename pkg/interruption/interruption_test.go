package interruption

import "testing"

func floatEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

func TestEstimateRate(t *testing.T) {
	tests := []struct {
		name         string
		instanceType string
		want         float64
	}{
		{"compute optimized large size", "c6a.4xlarge", 0.0175},
		{"burstable micro", "t3.micro", 0.055},
		{"burstable nano", "t3.nano", 0.055},
		{"graviton burstable", "t4g.small", 0.040},
		{"general purpose large", "m5.large", 0.0405},
		{"memory optimized 2xlarge", "r5.2xlarge", 0.048},
		{"unmultiplied size", "c5.small", 0.030},
		{"metal", "c6i.metal", 0.0175},
		{"unknown family default base", "z9.large", 0.045},
		{"unknown family unknown size", "z9.weird", 0.05},
		{"no size separator", "c5", 0.030},
		{"empty string", "", 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRate(tt.instanceType)
			if !floatEqual(got, tt.want, 1e-9) {
				t.Errorf("EstimateRate(%q) = %v, want %v", tt.instanceType, got, tt.want)
			}
		})
	}
}

func TestEstimateRateDeterministic(t *testing.T) {
	first := EstimateRate("m6i.xlarge")
	for i := 0; i < 10; i++ {
		if got := EstimateRate("m6i.xlarge"); got != first {
			t.Fatalf("EstimateRate varied across calls: %v != %v", got, first)
		}
	}
}

func TestEstimateRateAlwaysPositive(t *testing.T) {
	for family := range FamilyBaseRates {
		for _, size := range []string{"nano", "micro", "large", "xlarge", "2xlarge", "4xlarge", "metal", "odd"} {
			instanceType := family + "." + size
			if got := EstimateRate(instanceType); got <= 0 {
				t.Errorf("EstimateRate(%q) = %v, want > 0", instanceType, got)
			}
		}
	}
}
