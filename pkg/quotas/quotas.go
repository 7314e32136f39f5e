// Package quotas reports the spot vCPU service quotas of a region, so an
// operator can tell whether a recommended instance type could actually be
// launched at the desired scale.
package quotas

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
)

// QuotaFamily groups instance families the way Service Quotas does.
type QuotaFamily string

const (
	FamilyStandard QuotaFamily = "Standard" // A, C, D, H, I, M, R, T, Z
	FamilyG        QuotaFamily = "G"        // Graphics
	FamilyP        QuotaFamily = "P"        // GPU training
	FamilyX        QuotaFamily = "X"        // Memory optimized
)

// Spot vCPU quota codes for EC2.
const (
	QuotaCodeSpotStandard = "L-34B43A08" // All Standard Spot Instance Requests
	QuotaCodeSpotG        = "L-3819A6DF" // All G and VT Spot Instance Requests
	QuotaCodeSpotP        = "L-7212CCBC" // All P Spot Instance Requests
	QuotaCodeSpotX        = "L-E3A00192" // All X Spot Instance Requests
)

var spotQuotaCodes = map[QuotaFamily]string{
	FamilyStandard: QuotaCodeSpotStandard,
	FamilyG:        QuotaCodeSpotG,
	FamilyP:        QuotaCodeSpotP,
	FamilyX:        QuotaCodeSpotX,
}

// QuotaInfo contains the spot vCPU quotas of one region.
type QuotaInfo struct {
	Region      string                  `json:"region" yaml:"region"`
	Spot        map[QuotaFamily]float64 `json:"spot" yaml:"spot"`
	LastUpdated time.Time               `json:"last_updated" yaml:"last_updated"`
}

// Client handles quota lookups. Results are cached per region for a short
// TTL since quotas change rarely.
type Client struct {
	sqClient *servicequotas.Client
	cache    map[string]*QuotaInfo
	cacheMu  sync.RWMutex
	cacheTTL time.Duration
}

// NewClient creates a quota client scoped to a region.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config (credentials required for quota checking): %w", err)
	}

	return &Client{
		sqClient: servicequotas.NewFromConfig(cfg),
		cache:    make(map[string]*QuotaInfo),
		cacheTTL: 5 * time.Minute,
	}, nil
}

// SpotQuotas retrieves the spot vCPU quotas for a region.
func (c *Client) SpotQuotas(ctx context.Context, region string) (*QuotaInfo, error) {
	c.cacheMu.RLock()
	if cached, ok := c.cache[region]; ok && time.Since(cached.LastUpdated) < c.cacheTTL {
		c.cacheMu.RUnlock()
		return cached, nil
	}
	c.cacheMu.RUnlock()

	info := &QuotaInfo{
		Region:      region,
		Spot:        make(map[QuotaFamily]float64),
		LastUpdated: time.Now(),
	}

	for family, code := range spotQuotaCodes {
		output, err := c.sqClient.GetServiceQuota(ctx, &servicequotas.GetServiceQuotaInput{
			ServiceCode: aws.String("ec2"),
			QuotaCode:   aws.String(code),
		})
		if err != nil {
			// A family-level quota can be missing in partial regions.
			continue
		}
		if output.Quota != nil && output.Quota.Value != nil {
			info.Spot[family] = *output.Quota.Value
		}
	}

	if len(info.Spot) == 0 {
		return nil, fmt.Errorf("no spot quotas found in %s", region)
	}

	c.cacheMu.Lock()
	c.cache[region] = info
	c.cacheMu.Unlock()

	return info, nil
}

// FamilyForInstanceType maps an instance type to its Service Quotas family
// grouping.
func FamilyForInstanceType(instanceType string) QuotaFamily {
	family := strings.ToLower(instanceType)
	if i := strings.IndexByte(family, '.'); i >= 0 {
		family = family[:i]
	}
	if family == "" {
		return FamilyStandard
	}

	switch family[0] {
	case 'g':
		return FamilyG
	case 'p':
		return FamilyP
	case 'x':
		return FamilyX
	default:
		return FamilyStandard
	}
}
