// Package awsapi wraps the AWS SDK calls the analyzer depends on: spot
// price history, On-Demand pricing, and availability zone discovery.
// Failures degrade at this boundary (fallback pricing, typed "no data"
// errors) so the scoring layers never see raw SDK errors.
package awsapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	awspricing "github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"

	"github.com/varadharajaan/spot-advisor/pkg/pricing"
)

const (
	// The Pricing API is only served from a fixed set of regions.
	pricingRegion = "us-east-1"

	// Spot history queries are bounded so a busy instance type cannot
	// return an unbounded sample set.
	maxSpotPriceResults = 300

	spotProductDescription = "Linux/UNIX"
)

// ErrNoPriceHistory is returned when the spot price history query succeeds
// but contains zero samples for the requested window.
var ErrNoPriceHistory = errors.New("no price history")

// Client is a region-scoped AWS adapter. It is safe for concurrent use.
type Client struct {
	ec2Client     *ec2.Client
	pricingClient *awspricing.Client
	region        string
	fallback      pricing.FallbackTable
	verbose       bool
}

// Option configures a Client.
type Option func(*options)

type options struct {
	accessKey string
	secretKey string
	fallback  pricing.FallbackTable
	verbose   bool
}

// WithStaticCredentials scopes the client to an explicit access key pair
// instead of the default credential chain.
func WithStaticCredentials(accessKey, secretKey string) Option {
	return func(o *options) {
		o.accessKey = accessKey
		o.secretKey = secretKey
	}
}

// WithFallbackTable overrides the static On-Demand fallback table.
func WithFallbackTable(table pricing.FallbackTable) Option {
	return func(o *options) { o.fallback = table }
}

// WithVerbose enables diagnostic output on stderr.
func WithVerbose(verbose bool) Option {
	return func(o *options) { o.verbose = verbose }
}

// New creates a client scoped to the given region.
func New(ctx context.Context, region string, opts ...Option) (*Client, error) {
	o := options{fallback: pricing.DefaultFallback}
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if o.accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.accessKey, o.secretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	pricingCfg := cfg.Copy()
	pricingCfg.Region = pricingRegion

	return &Client{
		ec2Client:     ec2.NewFromConfig(cfg),
		pricingClient: awspricing.NewFromConfig(pricingCfg),
		region:        region,
		fallback:      o.fallback,
		verbose:       o.verbose,
	}, nil
}

// Region returns the region this client is scoped to.
func (c *Client) Region() string {
	return c.region
}

// FetchSpotPriceHistory queries Linux/UNIX spot prices for an instance type
// over the past lookbackDays. An empty history returns ErrNoPriceHistory;
// query failures are returned as-is. No retries happen here - retry policy
// belongs to the caller.
func (c *Client) FetchSpotPriceHistory(ctx context.Context, instanceType string, lookbackDays int) (*pricing.Observation, error) {
	startTime := time.Now().AddDate(0, 0, -lookbackDays)

	output, err := c.ec2Client.DescribeSpotPriceHistory(ctx, &ec2.DescribeSpotPriceHistoryInput{
		InstanceTypes:       []ec2types.InstanceType{ec2types.InstanceType(instanceType)},
		ProductDescriptions: []string{spotProductDescription},
		StartTime:           &startTime,
		MaxResults:          aws.Int32(maxSpotPriceResults),
	})
	if err != nil {
		return nil, fmt.Errorf("spot price history query for %s: %w", instanceType, err)
	}

	obs := &pricing.Observation{
		InstanceType: instanceType,
		Region:       c.region,
		Samples:      make([]pricing.Sample, 0, len(output.SpotPriceHistory)),
	}

	for _, sp := range output.SpotPriceHistory {
		if sp.SpotPrice == nil || sp.AvailabilityZone == nil || sp.Timestamp == nil {
			continue
		}
		price, err := strconv.ParseFloat(*sp.SpotPrice, 64)
		if err != nil {
			// Malformed price from upstream; drop the sample at the boundary.
			if c.verbose {
				fmt.Fprintf(os.Stderr, "  Warning: malformed spot price %q for %s\n", *sp.SpotPrice, instanceType)
			}
			continue
		}
		obs.Samples = append(obs.Samples, pricing.Sample{
			Price:            price,
			AvailabilityZone: *sp.AvailabilityZone,
			Timestamp:        *sp.Timestamp,
		})
	}

	if len(obs.Samples) == 0 {
		return nil, fmt.Errorf("%s in %s: %w", instanceType, c.region, ErrNoPriceHistory)
	}

	return obs, nil
}

// FetchOnDemandPrice resolves the On-Demand hourly rate for an instance
// type, preferring the live Pricing API and degrading to the static
// fallback table. The result is always > 0.
func (c *Client) FetchOnDemandPrice(ctx context.Context, instanceType string) float64 {
	price, err := c.lookupOnDemandPrice(ctx, instanceType)
	if err != nil || price <= 0 {
		if c.verbose && err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: pricing API lookup for %s failed, using fallback: %v\n", instanceType, err)
		}
		return c.fallback.Rate(instanceType)
	}
	return price
}

func (c *Client) lookupOnDemandPrice(ctx context.Context, instanceType string) (float64, error) {
	filters := []pricingtypes.Filter{
		termMatch("instanceType", instanceType),
		termMatch("regionCode", c.region),
		termMatch("tenancy", "Shared"),
		termMatch("operatingSystem", "Linux"),
		termMatch("preInstalledSw", "NA"),
		termMatch("capacitystatus", "Used"),
	}

	output, err := c.pricingClient.GetProducts(ctx, &awspricing.GetProductsInput{
		ServiceCode: aws.String("AmazonEC2"),
		Filters:     filters,
		MaxResults:  aws.Int32(1),
	})
	if err != nil {
		return 0, fmt.Errorf("pricing query: %w", err)
	}
	if len(output.PriceList) == 0 {
		return 0, fmt.Errorf("no pricing entries for %s in %s", instanceType, c.region)
	}

	return parseOnDemandUSDPrice(output.PriceList[0])
}

// AvailabilityZones returns the available zones of the client's region.
func (c *Client) AvailabilityZones(ctx context.Context) ([]string, error) {
	output, err := c.ec2Client.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("region-name"), Values: []string{c.region}},
			{Name: aws.String("state"), Values: []string{"available"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe availability zones in %s: %w", c.region, err)
	}

	zones := make([]string, 0, len(output.AvailabilityZones))
	for _, az := range output.AvailabilityZones {
		if az.ZoneName != nil {
			zones = append(zones, *az.ZoneName)
		}
	}
	return zones, nil
}

// SpotOfferingZones returns the zones where an instance type is offered.
func (c *Client) SpotOfferingZones(ctx context.Context, instanceType string) ([]string, error) {
	output, err := c.ec2Client.DescribeInstanceTypeOfferings(ctx, &ec2.DescribeInstanceTypeOfferingsInput{
		LocationType: ec2types.LocationTypeAvailabilityZone,
		Filters: []ec2types.Filter{
			{Name: aws.String("instance-type"), Values: []string{instanceType}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe offerings for %s: %w", instanceType, err)
	}

	zones := make([]string, 0, len(output.InstanceTypeOfferings))
	for _, offering := range output.InstanceTypeOfferings {
		if offering.Location != nil {
			zones = append(zones, *offering.Location)
		}
	}
	return zones, nil
}

func termMatch(field, value string) pricingtypes.Filter {
	return pricingtypes.Filter{
		Type:  pricingtypes.FilterTypeTermMatch,
		Field: aws.String(field),
		Value: aws.String(value),
	}
}
