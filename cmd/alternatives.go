package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varadharajaan/spot-advisor/pkg/alternatives"
	"github.com/varadharajaan/spot-advisor/pkg/awsapi"
	"github.com/varadharajaan/spot-advisor/pkg/catalog"
	"github.com/varadharajaan/spot-advisor/pkg/output"
	"github.com/varadharajaan/spot-advisor/pkg/progress"
)

var (
	altMaxResults  int
	altParallelism int
	altProbeDays   int
)

var alternativesCmd = &cobra.Command{
	Use:     "alternatives <instance-type>",
	Aliases: []string{"alt"},
	Short:   "Find and rank alternative instance types",
	Long: `Find alternatives to a target instance type.

Candidates come from three passes over the catalog: the target's own
family, similar-performance types from other families, and cost-effective
remainders. Each candidate gets a quick Spot availability probe and is
ranked by a weighted overall score.

Examples:
  # Top 5 alternatives for c6a.xlarge
  spot-advisor alternatives c6a.xlarge

  # Top 10, probing candidates in parallel
  spot-advisor alternatives m5.large --max-results 10 --parallel 4`,
	Args: cobra.ExactArgs(1),
	RunE: runAlternatives,
}

func init() {
	rootCmd.AddCommand(alternativesCmd)

	alternativesCmd.Flags().IntVar(&altMaxResults, "max-results", 0, "Maximum alternatives to return (overrides config)")
	alternativesCmd.Flags().IntVar(&altParallelism, "parallel", 0, "Concurrent availability probes (overrides config)")
	alternativesCmd.Flags().IntVar(&altProbeDays, "probe-days", 0, "Probe lookback window in days (overrides config)")
}

func runAlternatives(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := alternatives.DefaultOptions()
	opts.ProbeLookbackDays = cfg.Lookback.ProbeDays
	opts.Parallelism = cfg.Parallelism
	opts.Verbose = verbose
	if altParallelism > 0 {
		opts.Parallelism = altParallelism
	}
	if altProbeDays > 0 {
		opts.ProbeLookbackDays = altProbeDays
	}

	maxResults := cfg.MaxResults
	if altMaxResults > 0 {
		maxResults = altMaxResults
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := awsapi.New(ctx, cfg.Region, awsapi.WithVerbose(verbose))
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	finder := alternatives.NewFinder(catalog.Default(), client, opts)

	if verbose {
		fmt.Fprintf(os.Stderr, "Searching alternatives for %s in %s...\n", target, cfg.Region)
	}

	var spinner *progress.Spinner
	if outputFormat == "table" && !verbose {
		spinner = progress.NewSpinner(os.Stderr, fmt.Sprintf("Probing alternatives for %s...", target))
		spinner.Start()
	}

	alts := finder.FindAlternatives(ctx, target, maxResults)

	if spinner != nil {
		spinner.Stop()
	}

	if len(alts) == 0 {
		fmt.Printf("No alternatives found for %s.\n", target)
		return nil
	}

	printer := output.NewPrinter(!noColor)
	switch outputFormat {
	case "json":
		return printer.PrintAlternativesJSON(alts)
	case "yaml":
		return printer.PrintAlternativesYAML(alts)
	case "csv":
		return printer.PrintAlternativesCSV(alts)
	case "table":
		return printer.PrintAlternativesTable(target, alts)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
