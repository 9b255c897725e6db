package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/alexiusacademia/framecalc/internal/server"
	"github.com/alexiusacademia/framecalc/internal/version"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Start the HTTP API.

Routes:
  GET  /api/health
  POST /api/layout            geometry, plan and elevation
  POST /api/estimate          rounded quantities and costs
  GET  /api/profiles          families, or ?q= to search
  GET  /api/profiles/:family  one family table

Request bodies hold "building" and "sections" objects; omitted keys keep
the configured defaults. Responses are JSON unless the request accepts
application/msgpack.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (config value when empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	designer, cat, err := newDesigner()
	if err != nil {
		return err
	}
	sc := cfg.Server
	if serveAddr != "" {
		sc.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaults := portal.Request{Building: cfg.Building, Sections: cfg.Sections}
	return server.New(designer, cat, defaults, sc, version.Version).Run(ctx)
}
