package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowib/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchInput  string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every beam in a spreadsheet",
	Long: `Read beams from the first sheet of an .xlsx workbook and write one
result row per beam to a new workbook.

Row 1 is a header. Columns:
  A name, B web height, C web thickness, D flange width,
  E flange thickness, F web material, G flange material

Rows whose failure delta exceeds 20% are highlighted.

Examples:
  gowib batch --input beams.xlsx --output results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input workbook (.xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Output workbook (.xlsx)")
	addSearchFlags(batchCmd)

	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}
	items, err := batch.ReadWorkbook(batchInput)
	if err != nil {
		return err
	}
	batch.Evaluate(items, opts)

	fmt.Println()
	fmt.Println("BATCH RESULTS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Row\tName\tStatus\tDominant Mode\tLoad (lbf)\tDelta (%%)\n")
	fmt.Fprintf(w, "  ───\t────\t──────\t─────────────\t──────────\t─────────\n")
	for _, item := range items {
		switch {
		case item.Err != nil:
			fmt.Fprintf(w, "  %d\t%s\terror\t%v\t\t\n", item.Row, item.Name, item.Err)
		case !item.Result.Passed():
			fmt.Fprintf(w, "  %d\t%s\trejected\t%s\t\t\n", item.Row, item.Name, item.Result.Validation.Message)
		case item.Result.Report.NoFailure:
			fmt.Fprintf(w, "  %d\t%s\tpass\tnone\t\t\n", item.Row, item.Name)
		default:
			r := item.Result.Report
			mark := ""
			if r.DeltaWarning {
				mark = " ⚠"
			}
			fmt.Fprintf(w, "  %d\t%s\tpass\t%s\t%d\t%.2f%s\n", item.Row, item.Name, r.DominantMode, r.DominantLoad, r.FailureDeltaPercent, mark)
		}
	}
	w.Flush()
	fmt.Println()

	if err := batch.WriteWorkbook(batchOutput, items); err != nil {
		return err
	}
	fmt.Printf("Results written to: %s\n", batchOutput)
	return nil
}
