package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gowib/internal/diagram"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeFile        string
	analyzeJSON        bool
	analyzeDiagram     bool
	analyzeExportFile  string
	analyzeSectionFile string
	analyzePDFFile     string
	analyzeStrict      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [webHeight webThickness flangeWidth flangeThickness webMaterial flangeMaterial]",
	Short: "Find the failure load and failure mode of a beam",
	Long: `Check the beam against the competition limits and, when it passes,
find the first failing load of every failure mode:

  - Web and flange bending (tensile strength)
  - Web shear at the neutral axis
  - Flange shear and glue shear at the flange-web joint

Dimensions are in inches. Materials are 0/oak or 1/pine.

Examples:
  # The documented example: oak web, pine flanges
  gowib analyze 1.375 0.25 1.0625 0.3125 0 1

  # Read the beam from a JSON file and plot utilization vs load
  gowib analyze --file beam.json --diagram -o stress.png

  # Literal 1 lbf sweep instead of bisection
  gowib analyze 1.375 0.25 1.0625 0.3125 oak pine --method sweep`,
	Args: cobra.MaximumNArgs(6),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to beam JSON file")
	addSearchFlags(analyzeCmd)

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Show ASCII section and utilization chart")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export utilization plot to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeSectionFile, "section-output", "", "Export section drawing to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Write a PDF report to file")
	analyzeCmd.Flags().BoolVar(&analyzeStrict, "strict", false, "Exit non-zero when the beam fails the parameter check")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	spec, err := readSpec(analyzeFile, args)
	if err != nil {
		return err
	}
	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}

	res, err := report.Run(spec, opts)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		report.WriteText(os.Stdout, res)
	}

	if analyzeSectionFile != "" {
		if err := diagram.ExportSectionDiagram(spec, analyzeSectionFile); err != nil {
			fmt.Printf("Error exporting section: %v\n", err)
		} else {
			fmt.Printf("Section exported to: %s\n", analyzeSectionFile)
		}
	}

	if !res.Passed() {
		if analyzeStrict {
			return res.Validation
		}
		return nil
	}

	r := res.Report
	e := failure.Evaluator{Section: r.Section, Spec: spec, Rig: opts.Rig}
	plotMax := float64(r.HighestLoad) * 1.1
	if r.NoFailure {
		plotMax = float64(r.Failures.LoadMax)
	}

	if analyzeDiagram && !analyzeJSON {
		fmt.Println(diagram.DrawASCIISection(spec))
		fmt.Println(diagram.StressChart(e, plotMax))
		if !r.NoFailure {
			fmt.Println(diagram.DrawSummaryBox("DOMINANT FAILURE", []string{
				r.DominantMode.String(),
				fmt.Sprintf("%d lbf  (delta %.2f%%)", r.DominantLoad, r.FailureDeltaPercent),
			}))
		}
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportStressPlot(e, r.Failures, plotMax, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting plot: %v\n", err)
		} else {
			fmt.Printf("Plot exported to: %s\n", analyzeExportFile)
		}
	}

	if analyzePDFFile != "" {
		if err := report.ExportPDF(res, analyzePDFFile); err != nil {
			return fmt.Errorf("pdf report: %w", err)
		}
		fmt.Printf("Report written to: %s\n", analyzePDFFile)
	}
	return nil
}
