package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/varadharajaan/spot-advisor/pkg/analyzer"
	"github.com/varadharajaan/spot-advisor/pkg/awsapi"
	"github.com/varadharajaan/spot-advisor/pkg/catalog"
	"github.com/varadharajaan/spot-advisor/pkg/output"
	"github.com/varadharajaan/spot-advisor/pkg/progress"
)

var (
	analyzeMinSavings      float64
	analyzeMaxInterruption float64
	analyzeMinScore        float64
	analyzeLookbackDays    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <instance-type> [instance-type...]",
	Short: "Analyze Spot availability for instance types",
	Long: `Analyze Spot instance availability in a region.

Each instance type is scored on price stability, savings vs On-Demand,
estimated interruption rate, and availability-zone coverage. The result
includes a recommendation decision and the reasons behind it.

Examples:
  # Analyze one instance type
  spot-advisor analyze t3.micro

  # Analyze several types in another region
  spot-advisor analyze c6a.xlarge m5.large -r eu-west-1

  # Tighten the savings gate
  spot-advisor analyze c6a.4xlarge --min-savings 30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&analyzeMinSavings, "min-savings", 0, "Minimum savings percentage gate (overrides config)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxInterruption, "max-interruption", 0, "Maximum interruption rate gate (overrides config)")
	analyzeCmd.Flags().Float64Var(&analyzeMinScore, "min-score", 0, "Minimum recommendation score gate (overrides config)")
	analyzeCmd.Flags().IntVar(&analyzeLookbackDays, "lookback-days", 0, "Spot price history window in days (overrides config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	thresholds := analyzer.Thresholds{
		MinSavingsPercent:   cfg.Thresholds.MinSavingsPercent,
		MaxInterruptionRate: cfg.Thresholds.MaxInterruptionRate,
		MinScore:            cfg.Thresholds.MinScore,
		AZSaturation:        cfg.Thresholds.AZSaturation,
		LookbackDays:        cfg.Lookback.AnalysisDays,
	}
	if analyzeMinSavings > 0 {
		thresholds.MinSavingsPercent = analyzeMinSavings
	}
	if analyzeMaxInterruption > 0 {
		thresholds.MaxInterruptionRate = analyzeMaxInterruption
	}
	if analyzeMinScore > 0 {
		thresholds.MinScore = analyzeMinScore
	}
	if analyzeLookbackDays > 0 {
		thresholds.LookbackDays = analyzeLookbackDays
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := awsapi.New(ctx, cfg.Region, awsapi.WithVerbose(verbose))
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	a := analyzer.New(catalog.Default(), client, client, cfg.Region, thresholds)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d instance type(s) in %s...\n", len(args), cfg.Region)
	}

	var spinner *progress.Spinner
	if outputFormat == "table" && !verbose {
		spinner = progress.NewSpinner(os.Stderr, fmt.Sprintf("Analyzing spot availability in %s...", cfg.Region))
		spinner.Start()
	}

	results := analyzeAll(ctx, a, client, args)

	if spinner != nil {
		spinner.Stop()
	}

	printer := output.NewPrinter(!noColor)
	switch outputFormat {
	case "json":
		return printer.PrintAnalysisJSON(results)
	case "yaml":
		return printer.PrintAnalysisYAML(results)
	case "csv":
		return printer.PrintAnalysisCSV(results)
	case "table":
		if err := printer.PrintAnalysisTable(results); err != nil {
			return err
		}
		printer.PrintAnalysisSummary(results)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// offeringSource reports where an instance type is offered. Used only for
// verbose diagnostics alongside the analysis itself.
type offeringSource interface {
	SpotOfferingZones(ctx context.Context, instanceType string) ([]string, error)
}

// analyzeAll fans the analysis out over a bounded worker set. Each type is
// independent, so only the result collection needs a lock.
func analyzeAll(ctx context.Context, a *analyzer.Analyzer, offerings offeringSource, instanceTypes []string) []*analyzer.Result {
	var (
		results []*analyzer.Result
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	semaphore := make(chan struct{}, 5)

	for _, instanceType := range instanceTypes {
		wg.Add(1)
		go func(it string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if verbose {
				fmt.Fprintf(os.Stderr, "  Analyzing: %s\n", it)
				if zones, err := offerings.SpotOfferingZones(ctx, it); err == nil {
					fmt.Fprintf(os.Stderr, "    Offered in %d zone(s): %s\n", len(zones), strings.Join(zones, ", "))
				}
			}

			result := a.AnalyzeAvailability(ctx, it)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(instanceType)
	}

	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].InstanceType < results[j].InstanceType
	})

	return results
}
