package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Browse the steel section catalog",
	Long: `List and search the rolled steel sections the frame is sized from.

Subcommands:
  list    - List the families, or the table of one family
  search  - Find designations in every family`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list [family]",
	Short: "List section families or one family table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfilesList,
}

var profilesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search designations in every family",
	Long: fmt.Sprintf(`Search designations in every family. Matching ignores case and is
tried both as typed and with spaces removed. Queries shorter than %d
characters find nothing.

Examples:
  framecalc profiles search "hea 30"
  framecalc profiles search 360`, catalog.MinSearchLength),
	Args: cobra.MinimumNArgs(1),
	RunE: runProfilesSearch,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesSearchCmd)
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println()
		fmt.Println("SECTION FAMILIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range cat.Families() {
			profiles, err := cat.Profiles(name)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintf(w, "  %s\t0 sections\t\n", name)
				continue
			}
			fmt.Fprintf(w, "  %s\t%d sections\t%s .. %s\n", name, len(profiles),
				profiles[0].Designation, profiles[len(profiles)-1].Designation)
		}
		w.Flush()
		fmt.Println()
		return nil
	}

	profiles, err := cat.Profiles(args[0])
	if err != nil {
		return err
	}
	printProfiles(strings.ToUpper(args[0]), profiles)
	return nil
}

func runProfilesSearch(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	found := cat.Search(query)
	if len(found) == 0 {
		if len([]rune(strings.TrimSpace(query))) < catalog.MinSearchLength {
			fmt.Printf("  Query too short, give at least %d characters.\n", catalog.MinSearchLength)
			return nil
		}
		fmt.Printf("  No section matches %q.\n", query)
		return nil
	}
	printProfiles(fmt.Sprintf("MATCHES FOR %q", query), found)
	return nil
}

func printProfiles(title string, profiles []catalog.SectionProfile) {
	fmt.Println()
	fmt.Printf("%s:\n", title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Family\tDesignation\tHeight (mm)\tMass (kg/m)")
	for _, p := range profiles {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.1f\n", p.Family, p.Designation, p.HeightMillimeters, p.MassPerMeterKg)
	}
	w.Flush()
	fmt.Println()
}
