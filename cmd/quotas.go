package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/varadharajaan/spot-advisor/pkg/quotas"
)

var quotasCmd = &cobra.Command{
	Use:   "quotas",
	Short: "Show Spot vCPU service quotas for a region",
	Long: `Show the Spot vCPU service quotas of a region.

A strong recommendation is useless if the account's Spot vCPU quota cannot
accommodate the instance; this command surfaces the per-family limits.

Examples:
  spot-advisor quotas
  spot-advisor quotas -r eu-west-1`,
	Args: cobra.NoArgs,
	RunE: runQuotas,
}

func init() {
	rootCmd.AddCommand(quotasCmd)
}

func runQuotas(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := quotas.NewClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	info, err := client.SpotQuotas(ctx, cfg.Region)
	if err != nil {
		return fmt.Errorf("failed to get spot quotas: %w", err)
	}

	families := make([]string, 0, len(info.Spot))
	for family := range info.Spot {
		families = append(families, string(family))
	}
	sort.Strings(families)

	fmt.Printf("Spot vCPU quotas in %s:\n", info.Region)
	for _, family := range families {
		fmt.Printf("  %-10s %.0f vCPUs\n", family, info.Spot[quotas.QuotaFamily(family)])
	}

	return nil
}
