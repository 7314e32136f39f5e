// Package output formats analysis results for the terminal: colorized
// tables for humans, JSON/YAML/CSV for automation.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/varadharajaan/spot-advisor/pkg/alternatives"
	"github.com/varadharajaan/spot-advisor/pkg/analyzer"
	"github.com/varadharajaan/spot-advisor/pkg/catalog"
)

// Printer handles output formatting.
type Printer struct {
	useColor bool
}

// NewPrinter creates a new output printer.
func NewPrinter(useColor bool) *Printer {
	return &Printer{useColor: useColor}
}

// PrintAnalysisTable outputs availability results as a formatted table,
// followed by the reason trail of each result.
func (p *Printer) PrintAnalysisTable(results []*analyzer.Result) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	headers := []string{"Instance Type", "Region", "Available", "Spot/hr", "On-Demand/hr", "Savings", "Interruption", "Score", "AZs"}
	table.SetHeader(headers)

	if p.useColor {
		colors := make([]tablewriter.Colors, len(headers))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor}
		}
		table.SetHeaderColor(colors...)
	}

	for _, r := range results {
		available := "no"
		if r.Available {
			available = "yes"
		}
		table.Append([]string{
			r.InstanceType,
			r.Region,
			available,
			fmt.Sprintf("$%.4f", r.CurrentPrice),
			fmt.Sprintf("$%.4f", r.OnDemandPrice),
			fmt.Sprintf("%.1f%%", r.SavingsPercent),
			fmt.Sprintf("%.1f%%", r.InterruptionRate*100),
			fmt.Sprintf("%.2f", r.Score),
			strconv.Itoa(len(r.Zones)),
		})
	}

	table.Render()

	for _, r := range results {
		p.printReasons(r)
	}

	return nil
}

func (p *Printer) printReasons(r *analyzer.Result) {
	if len(r.Reasons) == 0 {
		return
	}

	if p.useColor {
		header := color.New(color.FgCyan, color.Bold)
		header.Printf("\n%s:\n", r.InstanceType)
	} else {
		fmt.Printf("\n%s:\n", r.InstanceType)
	}
	for _, reason := range r.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
}

// PrintAnalysisSummary prints aggregate stats after the table.
func (p *Printer) PrintAnalysisSummary(results []*analyzer.Result) {
	if len(results) == 0 {
		return
	}

	available := 0
	var totalSavings float64
	savingsCount := 0
	for _, r := range results {
		if r.Available {
			available++
		}
		if r.SavingsPercent > 0 {
			totalSavings += r.SavingsPercent
			savingsCount++
		}
	}

	fmt.Printf("\nSpot Availability Summary:\n")
	fmt.Printf("   Analyzed: %d\n", len(results))
	fmt.Printf("   Recommended: %d\n", available)
	if savingsCount > 0 {
		fmt.Printf("   Average Savings: %.1f%% vs On-Demand\n", totalSavings/float64(savingsCount))
	}
	fmt.Println()
}

// PrintAnalysisJSON outputs availability results as JSON.
func (p *Printer) PrintAnalysisJSON(results []*analyzer.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// PrintAnalysisYAML outputs availability results as YAML.
func (p *Printer) PrintAnalysisYAML(results []*analyzer.Result) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(results)
}

// PrintAnalysisCSV outputs availability results as CSV.
func (p *Printer) PrintAnalysisCSV(results []*analyzer.Result) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"instance_type", "region", "is_available", "current_price", "on_demand_price", "savings_percent", "interruption_rate", "recommendation_score", "availability_zones"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.InstanceType,
			r.Region,
			strconv.FormatBool(r.Available),
			fmt.Sprintf("%.4f", r.CurrentPrice),
			fmt.Sprintf("%.4f", r.OnDemandPrice),
			fmt.Sprintf("%.2f", r.SavingsPercent),
			fmt.Sprintf("%.4f", r.InterruptionRate),
			fmt.Sprintf("%.3f", r.Score),
			strings.Join(r.Zones, ";"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// PrintAlternativesTable outputs ranked alternatives as a formatted table.
func (p *Printer) PrintAlternativesTable(target string, alts []alternatives.Alternative) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	headers := []string{"#", "Instance Type", "Family", "vCPUs", "Memory (GiB)", "Cost/hr", "Availability", "Overall", "Reason"}
	table.SetHeader(headers)

	if p.useColor {
		colors := make([]tablewriter.Colors, len(headers))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor}
		}
		table.SetHeaderColor(colors...)
	}

	for i, alt := range alts {
		table.Append([]string{
			strconv.Itoa(i + 1),
			alt.InstanceType,
			alt.Family,
			strconv.Itoa(int(alt.VCPUs)),
			fmt.Sprintf("%.1f", alt.MemoryGiB),
			fmt.Sprintf("$%.4f", alt.HourlyCost),
			fmt.Sprintf("%.2f", alt.AvailabilityScore),
			fmt.Sprintf("%.1f", alt.OverallScore),
			alt.Reason,
		})
	}

	if p.useColor {
		cyan := color.New(color.FgCyan, color.Bold)
		cyan.Printf("\nFound %d alternative(s) for %s\n\n", len(alts), target)
	} else {
		fmt.Printf("\nFound %d alternative(s) for %s\n\n", len(alts), target)
	}

	table.Render()
	return nil
}

// PrintAlternativesJSON outputs alternatives as JSON.
func (p *Printer) PrintAlternativesJSON(alts []alternatives.Alternative) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(alts)
}

// PrintAlternativesYAML outputs alternatives as YAML.
func (p *Printer) PrintAlternativesYAML(alts []alternatives.Alternative) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(alts)
}

// PrintAlternativesCSV outputs alternatives as CSV.
func (p *Printer) PrintAlternativesCSV(alts []alternatives.Alternative) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"instance_type", "family", "vcpus", "memory_gib", "performance", "hourly_cost", "availability_score", "overall_score", "reason"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, alt := range alts {
		row := []string{
			alt.InstanceType,
			alt.Family,
			strconv.Itoa(int(alt.VCPUs)),
			fmt.Sprintf("%.1f", alt.MemoryGiB),
			fmt.Sprintf("%.1f", alt.Performance),
			fmt.Sprintf("%.4f", alt.HourlyCost),
			fmt.Sprintf("%.3f", alt.AvailabilityScore),
			fmt.Sprintf("%.2f", alt.OverallScore),
			alt.Reason,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// PrintCatalogTable outputs the instance catalog as a formatted table.
func (p *Printer) PrintCatalogTable(specs []catalog.InstanceSpec) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	headers := []string{"Instance Type", "Family", "vCPUs", "Memory (GiB)", "Performance"}
	table.SetHeader(headers)

	if p.useColor {
		colors := make([]tablewriter.Colors, len(headers))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor}
		}
		table.SetHeaderColor(colors...)
	}

	for _, spec := range specs {
		table.Append([]string{
			spec.InstanceType,
			spec.Family,
			strconv.Itoa(int(spec.VCPUs)),
			fmt.Sprintf("%.1f", spec.MemoryGiB),
			fmt.Sprintf("%.0f", spec.Performance),
		})
	}

	table.Render()
	return nil
}

// PrintCatalogJSON outputs the instance catalog as JSON.
func (p *Printer) PrintCatalogJSON(specs []catalog.InstanceSpec) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(specs)
}

// PrintCatalogYAML outputs the instance catalog as YAML.
func (p *Printer) PrintCatalogYAML(specs []catalog.InstanceSpec) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(specs)
}
