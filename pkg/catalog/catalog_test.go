package catalog

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	cat := Default()

	tests := []struct {
		name         string
		instanceType string
		wantOK       bool
		wantVCPUs    int32
		wantMemory   float64
	}{
		{"known burstable", "t3.micro", true, 2, 1},
		{"known compute optimized", "c6a.4xlarge", true, 16, 32},
		{"unknown type", "z9.bogus", false, 0, 0},
		{"empty string", "", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := cat.Lookup(tt.instanceType)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.instanceType, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if spec.VCPUs != tt.wantVCPUs {
				t.Errorf("VCPUs = %d, want %d", spec.VCPUs, tt.wantVCPUs)
			}
			if spec.MemoryGiB != tt.wantMemory {
				t.Errorf("MemoryGiB = %v, want %v", spec.MemoryGiB, tt.wantMemory)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	input := map[string]InstanceSpec{
		"c6a.xlarge": {InstanceType: "c6a.xlarge", VCPUs: 4, MemoryGiB: 8, Performance: 50},
	}
	cat := New(input)

	input["c6a.xlarge"] = InstanceSpec{InstanceType: "c6a.xlarge", VCPUs: 99}
	delete(input, "c6a.xlarge")

	spec, ok := cat.Lookup("c6a.xlarge")
	if !ok {
		t.Fatal("Lookup failed after mutating the input map")
	}
	if spec.VCPUs != 4 {
		t.Errorf("VCPUs = %d, want 4", spec.VCPUs)
	}
}

func TestNewFillsFamily(t *testing.T) {
	cat := New(map[string]InstanceSpec{
		"m6i.large": {InstanceType: "m6i.large", VCPUs: 2, MemoryGiB: 8},
	})

	spec, _ := cat.Lookup("m6i.large")
	if spec.Family != "m6i" {
		t.Errorf("Family = %q, want %q", spec.Family, "m6i")
	}
}

func TestSpecsSorted(t *testing.T) {
	specs := Default().Specs()
	if len(specs) == 0 {
		t.Fatal("Specs returned no entries")
	}
	sorted := sort.SliceIsSorted(specs, func(i, j int) bool {
		return specs[i].InstanceType < specs[j].InstanceType
	})
	if !sorted {
		t.Error("Specs not sorted by instance type")
	}
}

func TestFamily(t *testing.T) {
	specs := Default().Family("t3")
	if len(specs) == 0 {
		t.Fatal("Family(t3) returned no entries")
	}
	for _, spec := range specs {
		if spec.Family != "t3" {
			t.Errorf("Family(t3) returned %s with family %q", spec.InstanceType, spec.Family)
		}
	}
}

func TestExtractFamily(t *testing.T) {
	tests := []struct {
		instanceType string
		want         string
	}{
		{"c6a.4xlarge", "c6a"},
		{"t3.micro", "t3"},
		{"c5", "c5"},
		{"", ""},
		{"m5.metal", "m5"},
	}

	for _, tt := range tests {
		if got := ExtractFamily(tt.instanceType); got != tt.want {
			t.Errorf("ExtractFamily(%q) = %q, want %q", tt.instanceType, got, tt.want)
		}
	}
}

func TestExtractSize(t *testing.T) {
	tests := []struct {
		instanceType string
		want         string
	}{
		{"c6a.4xlarge", "4xlarge"},
		{"t3.micro", "micro"},
		{"c5", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractSize(tt.instanceType); got != tt.want {
			t.Errorf("ExtractSize(%q) = %q, want %q", tt.instanceType, got, tt.want)
		}
	}
}
