package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/framecalc/internal/diagram"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate steel weights and cost of a portal frame building",
	Long: `Compute the structural steel quantities of the building and
price them per tonne.

  Columns   2 per frame at eave height, with a waste factor
  Rafters   2 per frame at rafter length, with a waste factor
  Bracing   end-bay X bracing rods along the eave diagonal

Purlins are reported as a run length only and carry no cost.
The rates come from the "costs" section of the configuration file.

Examples:
  # Default building
  framecalc estimate

  # Heavier frame with HEA sections on a wider span
  framecalc estimate --width 24 --column "HEA 300" --rafter "HEA 280"`,
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	addBuildingFlags(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	designer, cat, err := newDesigner()
	if err != nil {
		return err
	}
	req, err := buildingRequest(cmd, cat)
	if err != nil {
		return err
	}
	r, err := designer.Run(req)
	if err != nil {
		return err
	}
	e := r.Estimate.Rounded()
	rates := designer.Rates()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PORTAL FRAME QUANTITIES AND COST")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printInputs(r)
	printGeometry(r)

	fmt.Println("STEEL WEIGHTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Columns:\t%.2f t\t(waste ×%.2f)\n", e.ColumnWeight, rates.ColumnWaste)
	fmt.Fprintf(w, "  Rafters:\t%.2f t\t(waste ×%.2f)\n", e.RafterWeight, rates.RafterWaste)
	fmt.Fprintf(w, "  Bracing:\t%.2f t\t(%d rods, %.2f m)\n", e.BracingWeight, e.BracingCount, e.BracingLength)
	fmt.Fprintf(w, "  Subtotal:\t%.2f t\t\n", e.Subtotal)
	fmt.Fprintf(w, "  Purlin run (not priced):\t%.2f m\t\n", e.PurlinRunLength)
	w.Flush()
	fmt.Println()

	fmt.Println("BRACING CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Estimated rods: %d, drawn in plan: %d", e.BracingCount, e.PlanBracingCount)
	if e.BracingConsistent {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ⚠ (cost uses the estimated count)")
	}
	fmt.Println()

	c := e.Costs
	fmt.Println("COSTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawBars([]diagram.Bar{
		{Label: "Material", Value: c.Material},
		{Label: "Fabrication", Value: c.Fabrication},
		{Label: "Erection", Value: c.Erection},
		{Label: "Engineering", Value: c.Engineering},
		{Label: "Company margin", Value: c.CompanyMargin},
	}, 40, e.Currency))
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("TOTAL COST", []string{
		fmt.Sprintf("%.2f %s", c.Total, e.Currency),
		fmt.Sprintf("%.2f %s per tonne of %.2f t", c.PerTonne, e.Currency, e.Subtotal),
	}))
	fmt.Println()
	return nil
}
