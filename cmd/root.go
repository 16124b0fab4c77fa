package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gowib/internal/config"
	"github.com/alexiusacademia/gowib/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gowib",
	Short: "Wooden I-Beam Failure Analysis Tool",
	Long: `gowib - Go Wooden I-Beam analyzer

A CLI tool that estimates the failure load and failure mode of a glued
wooden I-beam built from oak and pine stock.

This tool helps beam-competition teams:
  - Check a beam against the competition stock and envelope limits
  - Compute the transformed section of mixed-species beams
  - Find the first failing load of every bending and shear mode
  - Compare failure modes (delta), strength to weight and deflection

Loading is a single point load on a 20 in simply supported span,
12 in from the left support.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowib v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Wooden I-Beam Failure Analyzer                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Competition geometry check")
		fmt.Println("    • Transformed-section analysis of oak/pine beams")
		fmt.Println("    • Bending, shear and glue-line failure search")
		fmt.Println("    • Text, JSON, PDF, spreadsheet and plot output")
		fmt.Println()
		fmt.Println("  Use 'gowib --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read defaults from this .env file (default .env if present)")
}
