package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varadharajaan/spot-advisor/pkg/interruption"
)

var interruptionCmd = &cobra.Command{
	Use:   "interruption <instance-type> [instance-type...]",
	Short: "Estimate Spot interruption rates",
	Long: `Estimate the Spot interruption probability of instance types.

The estimate is a deterministic heuristic (family base rate scaled by
instance size) and needs no AWS credentials or network access.

Examples:
  spot-advisor interruption c6a.4xlarge
  spot-advisor interruption t3.micro m5.large r5.2xlarge`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInterruption,
}

func init() {
	rootCmd.AddCommand(interruptionCmd)
}

func runInterruption(cmd *cobra.Command, args []string) error {
	for _, instanceType := range args {
		rate := interruption.EstimateRate(instanceType)
		fmt.Printf("%-16s %.2f%%\n", instanceType, rate*100)
	}
	return nil
}
