package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varadharajaan/spot-advisor/pkg/catalog"
	"github.com/varadharajaan/spot-advisor/pkg/output"
)

var catalogFamily string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the instance type catalog",
	Long: `List the static instance spec catalog the advisor analyzes.

Examples:
  spot-advisor catalog
  spot-advisor catalog --family c6a
  spot-advisor catalog -o json`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogFamily, "family", "", "Only show one instance family")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()

	specs := cat.Specs()
	if catalogFamily != "" {
		specs = cat.Family(catalogFamily)
		if len(specs) == 0 {
			fmt.Printf("No catalog entries for family %q.\n", catalogFamily)
			return nil
		}
	}

	printer := output.NewPrinter(!noColor)
	switch outputFormat {
	case "json":
		return printer.PrintCatalogJSON(specs)
	case "yaml":
		return printer.PrintCatalogYAML(specs)
	case "table", "csv":
		return printer.PrintCatalogTable(specs)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
