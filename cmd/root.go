package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/config"
	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/alexiusacademia/framecalc/internal/version"
	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// cfg is loaded once before any subcommand runs
	cfg = config.Default()

	log = structlog.New(structlog.KeyUnit, "cmd")
)

var rootCmd = &cobra.Command{
	Use:   "framecalc",
	Short: "Portal Frame Layout and Cost Estimator",
	Long: `framecalc - Steel Portal Frame Building Calculator

A CLI tool for the preliminary layout of single-storey steel portal
frame buildings with a symmetric gable roof.

From a handful of building inputs it derives:
  - Rafter length, purlin and girt counts and spacings
  - The roof plan: frame grid, purlins and end-bay X bracing
  - The frame elevation: columns, rafters, gusset plates, girts
  - Steel weights and a cost estimate per tonne

Sections are taken from the built-in HEA, HEB, HEM, IPN and IPE tables
or from a YAML catalog named in the configuration file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   framecalc v%-45s║\n", version.Version)
		fmt.Println("  ║   Steel Portal Frame Layout and Cost Estimator            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Derived frame geometry: rafter, purlins, girts")
		fmt.Println("    • Roof plan with purlin grid and end-bay X bracing")
		fmt.Println("    • Frame elevation with gusset plates and girts")
		fmt.Println("    • Steel weight and cost estimate")
		fmt.Println("    • Section catalog search and HTTP API")
		fmt.Println()
		fmt.Println("  Use 'framecalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "wrn", "Log level: dbg, inf, wrn or err")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := initLog(logLevel); err != nil {
		return err
	}
	log = structlog.New(structlog.KeyUnit, "cmd")
	if configPath == "" {
		return nil
	}
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	log.Debug("config loaded", "path", configPath)
	return nil
}

func initLog(level string) error {
	switch level {
	case "dbg", "inf", "wrn", "err":
	default:
		return merry.Errorf("unknown log level %q", level)
	}
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyPID, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(structlog.KeyStack, structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
			structlog.KeyUnit:   " %6[2]s",
		}).
		SetLogLevel(structlog.ParseLevel(level))
	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.Path != "" {
		log.Debug("catalog loaded", "path", cfg.Catalog.Path, "families", len(cat.Families()))
	}
	return cat, nil
}

func newDesigner() (*portal.Designer, *catalog.Catalog, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	return portal.New(cat, cfg), cat, nil
}
