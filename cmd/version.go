package cmd

import (
	"fmt"

	"github.com/alexiusacademia/framecalc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of framecalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("framecalc v%s\n", version.String())
		fmt.Println("Steel Portal Frame Layout and Cost Estimator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
