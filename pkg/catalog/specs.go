package catalog

// DefaultSpecs is the built-in instance spec table. The performance index is
// a relative scale across the table, not an absolute benchmark figure.
var DefaultSpecs = map[string]InstanceSpec{
	// Burstable
	"t3.micro":   {InstanceType: "t3.micro", VCPUs: 2, MemoryGiB: 1, Family: "t3", Performance: 8},
	"t3.small":   {InstanceType: "t3.small", VCPUs: 2, MemoryGiB: 2, Family: "t3", Performance: 10},
	"t3.medium":  {InstanceType: "t3.medium", VCPUs: 2, MemoryGiB: 4, Family: "t3", Performance: 14},
	"t3.large":   {InstanceType: "t3.large", VCPUs: 2, MemoryGiB: 8, Family: "t3", Performance: 18},
	"t4g.micro":  {InstanceType: "t4g.micro", VCPUs: 2, MemoryGiB: 1, Family: "t4g", Performance: 9},
	"t4g.small":  {InstanceType: "t4g.small", VCPUs: 2, MemoryGiB: 2, Family: "t4g", Performance: 11},
	"t4g.medium": {InstanceType: "t4g.medium", VCPUs: 2, MemoryGiB: 4, Family: "t4g", Performance: 15},
	"t4g.large":  {InstanceType: "t4g.large", VCPUs: 2, MemoryGiB: 8, Family: "t4g", Performance: 19},

	// General purpose
	"m5.large":    {InstanceType: "m5.large", VCPUs: 2, MemoryGiB: 8, Family: "m5", Performance: 30},
	"m5.xlarge":   {InstanceType: "m5.xlarge", VCPUs: 4, MemoryGiB: 16, Family: "m5", Performance: 42},
	"m5.2xlarge":  {InstanceType: "m5.2xlarge", VCPUs: 8, MemoryGiB: 32, Family: "m5", Performance: 58},
	"m6i.large":   {InstanceType: "m6i.large", VCPUs: 2, MemoryGiB: 8, Family: "m6i", Performance: 33},
	"m6i.xlarge":  {InstanceType: "m6i.xlarge", VCPUs: 4, MemoryGiB: 16, Family: "m6i", Performance: 46},
	"m6i.2xlarge": {InstanceType: "m6i.2xlarge", VCPUs: 8, MemoryGiB: 32, Family: "m6i", Performance: 62},
	"m7i.large":   {InstanceType: "m7i.large", VCPUs: 2, MemoryGiB: 8, Family: "m7i", Performance: 35},
	"m7i.xlarge":  {InstanceType: "m7i.xlarge", VCPUs: 4, MemoryGiB: 16, Family: "m7i", Performance: 48},

	// Compute optimized
	"c5.large":    {InstanceType: "c5.large", VCPUs: 2, MemoryGiB: 4, Family: "c5", Performance: 35},
	"c5.xlarge":   {InstanceType: "c5.xlarge", VCPUs: 4, MemoryGiB: 8, Family: "c5", Performance: 48},
	"c5.2xlarge":  {InstanceType: "c5.2xlarge", VCPUs: 8, MemoryGiB: 16, Family: "c5", Performance: 64},
	"c6a.large":   {InstanceType: "c6a.large", VCPUs: 2, MemoryGiB: 4, Family: "c6a", Performance: 37},
	"c6a.xlarge":  {InstanceType: "c6a.xlarge", VCPUs: 4, MemoryGiB: 8, Family: "c6a", Performance: 50},
	"c6a.2xlarge": {InstanceType: "c6a.2xlarge", VCPUs: 8, MemoryGiB: 16, Family: "c6a", Performance: 66},
	"c6a.4xlarge": {InstanceType: "c6a.4xlarge", VCPUs: 16, MemoryGiB: 32, Family: "c6a", Performance: 82},
	"c6i.large":   {InstanceType: "c6i.large", VCPUs: 2, MemoryGiB: 4, Family: "c6i", Performance: 38},
	"c6i.xlarge":  {InstanceType: "c6i.xlarge", VCPUs: 4, MemoryGiB: 8, Family: "c6i", Performance: 51},
	"c7g.large":   {InstanceType: "c7g.large", VCPUs: 2, MemoryGiB: 4, Family: "c7g", Performance: 40},
	"c7g.xlarge":  {InstanceType: "c7g.xlarge", VCPUs: 4, MemoryGiB: 8, Family: "c7g", Performance: 54},

	// Memory optimized
	"r5.large":    {InstanceType: "r5.large", VCPUs: 2, MemoryGiB: 16, Family: "r5", Performance: 32},
	"r5.xlarge":   {InstanceType: "r5.xlarge", VCPUs: 4, MemoryGiB: 32, Family: "r5", Performance: 44},
	"r5.2xlarge":  {InstanceType: "r5.2xlarge", VCPUs: 8, MemoryGiB: 64, Family: "r5", Performance: 60},
	"r6i.large":   {InstanceType: "r6i.large", VCPUs: 2, MemoryGiB: 16, Family: "r6i", Performance: 34},
	"r6i.xlarge":  {InstanceType: "r6i.xlarge", VCPUs: 4, MemoryGiB: 32, Family: "r6i", Performance: 47},
	"r6i.2xlarge": {InstanceType: "r6i.2xlarge", VCPUs: 8, MemoryGiB: 64, Family: "r6i", Performance: 63},
}
