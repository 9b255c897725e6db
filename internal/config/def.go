package config

import (
	"time"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/estimate"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/layout"
)

func Default() Config {
	return Config{
		Building: frame.DefaultParams(),
		Sections: Sections{
			Column: catalog.Ref{Family: "IPE", Designation: "IPE 360"},
			Rafter: catalog.Ref{Family: "IPE", Designation: "IPE 360"},
		},
		Frame:  frame.DefaultOptions(),
		Layout: layout.DefaultOptions(),
		Costs:  estimate.DefaultRates(),
		Server: Server{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
			BodyLimit:       "64K",
		},
	}
}
