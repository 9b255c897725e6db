package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/framecalc/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	sweepFrom float64
	sweepTo   float64
	sweepStep float64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare roof pitches for the same building",
	Long: `Run the layout and the estimate once per roof pitch and chart
how the rafter length and the total cost change.

Examples:
  # Pitches from 6° to 30° in 2° steps
  framecalc sweep --from 6 --to 30 --step 2`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	addBuildingFlags(sweepCmd)

	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 5, "First pitch (degrees)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 30, "Last pitch (degrees)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 1, "Pitch increment (degrees)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	designer, cat, err := newDesigner()
	if err != nil {
		return err
	}
	req, err := buildingRequest(cmd, cat)
	if err != nil {
		return err
	}
	points, err := designer.SweepPitch(req, sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ROOF PITCH SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  pitch\trafter (m)\tpurlins\trods\tsteel (t)\ttotal\t")
	rafters := make([]float64, len(points))
	totals := make([]float64, len(points))
	for i, p := range points {
		g, e := p.Result.Geometry, p.Result.Estimate.Rounded()
		fmt.Fprintf(w, "  %.1f°\t%.2f\t%d\t%d\t%.2f\t%.2f %s\t\n",
			p.Pitch, g.RafterLength, g.PurlinCount, e.BracingCount, e.Subtotal, e.Costs.Total, e.Currency)
		rafters[i] = g.RafterLength
		totals[i] = e.Costs.Total
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSeries(rafters, 8, "rafter length (m) by pitch"))
	fmt.Println()
	fmt.Print(diagram.DrawSeries(totals, 8, "total cost by pitch"))
	fmt.Println()
	return nil
}
