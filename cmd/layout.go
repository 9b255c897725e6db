package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/framecalc/internal/diagram"
	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/spf13/cobra"
)

var (
	layoutSketch          bool
	layoutSketchCols      int
	layoutSketchRows      int
	layoutSegments        bool
	layoutOutput          string
	layoutElevationOutput string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Derive the frame geometry and draw the plan and elevation",
	Long: `Derive the frame geometry of a portal frame building and
generate its two views:

  Plan       frame grid, building edges, ridge, purlin lines and the
             X bracing of both end bays
  Elevation  one frame with columns, rafters, gusset plates, wall
             girts and purlin ticks

Inputs not given as flags come from the configuration file.

Examples:
  # Default 18 m building with 5 frames
  framecalc layout

  # 24 m span, 15° roof, with a text sketch of both views
  framecalc layout --width 24 --pitch 15 --sketch

  # Export the views as images
  framecalc layout --output plan.png --elevation-output elevation.svg`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	addBuildingFlags(layoutCmd)

	layoutCmd.Flags().BoolVar(&layoutSketch, "sketch", false, "Print a text sketch of the plan and the elevation")
	layoutCmd.Flags().IntVar(&layoutSketchCols, "sketch-width", 72, "Sketch width (characters)")
	layoutCmd.Flags().IntVar(&layoutSketchRows, "sketch-height", 24, "Sketch height (lines)")
	layoutCmd.Flags().BoolVar(&layoutSegments, "segments", false, "List every segment of both views")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "Export the plan to an image file (.png, .svg, .pdf)")
	layoutCmd.Flags().StringVar(&layoutElevationOutput, "elevation-output", "", "Export the elevation to an image file (.png, .svg, .pdf)")
}

func runLayout(cmd *cobra.Command, args []string) error {
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

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PORTAL FRAME LAYOUT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printInputs(r)
	printGeometry(r)

	fmt.Println("PLAN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printViewCounts(w, &r.Plan.View)
	fmt.Fprintf(w, "  Purlin bay spacing:\t%.3f m\n", r.Plan.PurlinBaySpacing)
	fmt.Fprintf(w, "  Eave diagonal:\t%.3f m\n", r.Plan.DiagonalLength)
	fmt.Fprintf(w, "  Last frame (bracing anchor):\tx = %.2f m\n", r.Plan.LastFrameX)
	w.Flush()
	fmt.Println()

	fmt.Println("ELEVATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printViewCounts(w, &r.Elevation.View)
	fmt.Fprintf(w, "  Apex:\t(%.3f, %.3f) m\n", r.Elevation.Apex.X, r.Elevation.Apex.Y)
	fmt.Fprintf(w, "  Rafter / column intersection:\t(%.3f, %.3f) m\n", r.Elevation.Intersection.X, r.Elevation.Intersection.Y)
	fmt.Fprintf(w, "  Gusset corner:\t(%.3f, %.3f) m\n", r.Elevation.GussetCorner.X, r.Elevation.GussetCorner.Y)
	w.Flush()
	fmt.Println()

	if layoutSegments {
		printSegments(&r.Plan.View)
		printSegments(&r.Elevation.View)
	}

	if layoutSketch {
		fmt.Println("PLAN SKETCH:")
		fmt.Print(diagram.DrawASCIIView(&r.Plan.View, layoutSketchCols, layoutSketchRows))
		fmt.Print(diagram.DrawLegend(&r.Plan.View))
		fmt.Println()
		fmt.Println("ELEVATION SKETCH:")
		fmt.Print(diagram.DrawASCIIView(&r.Elevation.View, layoutSketchCols, layoutSketchRows))
		fmt.Print(diagram.DrawLegend(&r.Elevation.View))
		fmt.Println()
	}

	for _, x := range []struct {
		file  string
		view  *layout.View
		title string
	}{
		{layoutOutput, &r.Plan.View, "Plan"},
		{layoutElevationOutput, &r.Elevation.View, "Elevation"},
	} {
		if x.file == "" {
			continue
		}
		if err := diagram.ExportView(x.view, x.title, x.file); err != nil {
			return err
		}
		fmt.Printf("  %s saved to %s\n", x.title, x.file)
	}
	fmt.Println()
	return nil
}

func printInputs(r *portal.Result) {
	b := r.Request.Building
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Portal frames:\t%d\n", b.Portals)
	fmt.Fprintf(w, "  End bay spacing:\t%.2f m\n", b.EndBaySpacing)
	fmt.Fprintf(w, "  Internal bay spacing:\t%.2f m\n", b.InternalBaySpacing)
	fmt.Fprintf(w, "  Width (span):\t%.2f m\n", b.Width)
	fmt.Fprintf(w, "  Eave height:\t%.2f m\n", b.EaveHeight)
	fmt.Fprintf(w, "  Roof pitch:\t%.1f°\n", b.Pitch)
	fmt.Fprintf(w, "  Haunch:\t%.2f × %.2f m\n", b.HaunchLength, b.HaunchHeight)
	fmt.Fprintf(w, "  Column:\t%s (%.0f mm, %.1f kg/m)\n", r.Column.Designation, r.Column.HeightMillimeters, r.Column.MassPerMeterKg)
	fmt.Fprintf(w, "  Rafter:\t%s (%.0f mm, %.1f kg/m)\n", r.Rafter.Designation, r.Rafter.HeightMillimeters, r.Rafter.MassPerMeterKg)
	w.Flush()
	fmt.Println()
}

func printGeometry(r *portal.Result) {
	g := r.Geometry
	fmt.Println("FRAME GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rafter length:\t%.2f m\n", g.RafterLength)
	fmt.Fprintf(w, "  Purlins:\t%d (%d per side, nominal %.2f m)\n", g.PurlinCount, g.PurlinsPerSide, g.PurlinSpacing)
	fmt.Fprintf(w, "  Girts:\t%d per wall at %.3f m\n", g.GirtCount, g.GirtSpacing)
	w.Flush()
	fmt.Println()
}

func printViewCounts(w *tabwriter.Writer, v *layout.View) {
	for _, c := range layout.Classes() {
		if n := v.Count(c); n > 0 {
			fmt.Fprintf(w, "  %s:\t%d segments, %.2f m\n", c, n, v.TotalLength(c))
		}
	}
	fmt.Fprintf(w, "  Total:\t%d segments\n", len(v.Segments))
}

func printSegments(v *layout.View) {
	fmt.Printf("SEGMENTS (%s):\n", v.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  #\tclass\tx1\ty1\tx2\ty2\tlength\t")
	for i, s := range v.Segments {
		fmt.Fprintf(w, "  %d\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			i+1, s.Class, s.Start.X, s.Start.Y, s.End.X, s.End.Y, s.Length)
	}
	w.Flush()
	fmt.Println()
}
