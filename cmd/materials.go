package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowib/internal/material"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available materials",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("MATERIALS:")
		fmt.Println(rule)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tName\tDensity (lb/in³)\tTensile (psi)\tShear (psi)\tE (psi)\tGlue shear (psi)\n")
		fmt.Fprintf(w, "  ──\t────\t────────────────\t─────────────\t───────────\t───────\t────────────────\n")
		for _, id := range material.All() {
			p, _ := material.Lookup(id)
			glue, _ := material.GlueShearStrength(id, id)
			fmt.Fprintf(w, "  %d\t%s\t%.4f\t%.0f\t%.0f\t%.0f\t%.0f\n",
				int(id), p.Name, p.Density, p.TensileStrength, p.ShearStrength, p.ElasticModulus, glue)
		}
		w.Flush()
		fmt.Println()
		mixed, _ := material.GlueShearStrength(material.Oak, material.Pine)
		fmt.Printf("  Mixed oak/pine glue joints use the average: %.0f psi\n", mixed)
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

const rule = "───────────────────────────────────────────────────────────────"
