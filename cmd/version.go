package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowib/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowib",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
		fmt.Println("Wooden I-Beam Failure Analysis Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
