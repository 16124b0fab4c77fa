package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check [webHeight webThickness flangeWidth flangeThickness webMaterial flangeMaterial]",
	Short: "Check a beam against the competition limits",
	Long: `Check the beam geometry against the competition limits, in order:

  1. Every dimension at least 3/16 in
  2. Overall height at most 4 in
  3. Flange width at most 2 in
  4. Height to width ratio at most 2
  5. Web and flange thickness at most 3/4 in
  6. Flange and web aspect ratios at most 8

The first violated limit is reported and the command exits non-zero.

Examples:
  gowib check 1.375 0.25 1.0625 0.3125 0 1
  gowib check -f beam.json`,
	Args: cobra.MaximumNArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		spec, err := readSpec(checkFile, args)
		if err != nil {
			return err
		}
		if err := spec.CheckMaterials(); err != nil {
			return err
		}
		if v := spec.Validate(); v != nil {
			fmt.Printf("  ✗ %s\n", v.Message)
			return fmt.Errorf("parameter check failed: %s", v.Rule)
		}
		fmt.Println("  ✓ Beam is within competition parameters!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to beam JSON file")
}
