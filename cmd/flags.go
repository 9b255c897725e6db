package cmd

import (
	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/spf13/cobra"
)

var (
	// Building inputs shared by layout, estimate and sweep
	buildingPortals       int
	buildingEndBay        float64
	buildingInternalBay   float64
	buildingWidth         float64
	buildingEave          float64
	buildingPitch         float64
	buildingHaunchLength  float64
	buildingHaunchHeight  float64
	buildingColumnSection string
	buildingRafterSection string
)

func addBuildingFlags(c *cobra.Command) {
	d := frame.DefaultParams()
	f := c.Flags()

	f.IntVarP(&buildingPortals, "portals", "n", d.Portals, "Number of portal frames (4 to 50)")
	f.Float64Var(&buildingEndBay, "end-bay", d.EndBaySpacing, "End bay spacing (m)")
	f.Float64Var(&buildingInternalBay, "bay", d.InternalBaySpacing, "Internal bay spacing (m)")
	f.Float64VarP(&buildingWidth, "width", "w", d.Width, "Building width, frame span (m)")
	f.Float64Var(&buildingEave, "eave", d.EaveHeight, "Eave height (m)")
	f.Float64VarP(&buildingPitch, "pitch", "p", d.Pitch, "Roof pitch (degrees)")
	f.Float64Var(&buildingHaunchLength, "haunch-length", d.HaunchLength, "Haunch length (m)")
	f.Float64Var(&buildingHaunchHeight, "haunch-height", d.HaunchHeight, "Haunch height below the eave (m)")

	f.StringVar(&buildingColumnSection, "column", "", `Column section, e.g. "IPE 360" (config value when empty)`)
	f.StringVar(&buildingRafterSection, "rafter", "", `Rafter section, e.g. "HEA 300" (config value when empty)`)
}

// buildingRequest starts from the configuration and applies only the flags
// given on the command line.
func buildingRequest(c *cobra.Command, cat *catalog.Catalog) (portal.Request, error) {
	req := portal.Request{Building: cfg.Building, Sections: cfg.Sections}
	f := c.Flags()

	b := &req.Building
	for _, x := range []struct {
		flag  string
		dst   *float64
		value float64
	}{
		{"end-bay", &b.EndBaySpacing, buildingEndBay},
		{"bay", &b.InternalBaySpacing, buildingInternalBay},
		{"width", &b.Width, buildingWidth},
		{"eave", &b.EaveHeight, buildingEave},
		{"pitch", &b.Pitch, buildingPitch},
		{"haunch-length", &b.HaunchLength, buildingHaunchLength},
		{"haunch-height", &b.HaunchHeight, buildingHaunchHeight},
	} {
		if f.Changed(x.flag) {
			*x.dst = x.value
		}
	}
	if f.Changed("portals") {
		b.Portals = buildingPortals
	}

	for _, x := range []struct {
		designation string
		dst         *catalog.Ref
	}{
		{buildingColumnSection, &req.Sections.Column},
		{buildingRafterSection, &req.Sections.Rafter},
	} {
		if x.designation == "" {
			continue
		}
		p, err := cat.Find(x.designation)
		if err != nil {
			return req, err
		}
		*x.dst = catalog.Ref{Family: p.Family, Designation: p.Designation}
	}
	return req, nil
}
