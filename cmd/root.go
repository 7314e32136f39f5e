package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/varadharajaan/spot-advisor/pkg/config"
)

var (
	// Global flags
	outputFormat string
	noColor      bool
	region       string
	verbose      bool
	configPath   string
	timeout      time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "spot-advisor",
	Short: "Analyze EC2 Spot instance availability and find alternatives",
	Long: `spot-advisor scores EC2 Spot instance availability from price history,
On-Demand pricing, estimated interruption rates, and availability-zone
coverage, and recommends alternative instance types when a target is a
poor Spot candidate.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml, csv)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to analyze (default from config/environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.spot-advisor.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for AWS API calls")

	rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "yaml", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// loadConfig resolves file/env configuration and applies the --region flag
// on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if region != "" {
		cfg.Region = region
	}
	return cfg, nil
}
