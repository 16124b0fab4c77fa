package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/spf13/cobra"
)

// readSpec takes the beam from --file or from the six positional values.
func readSpec(file string, args []string) (beam.Spec, error) {
	if file != "" {
		if len(args) > 0 {
			return beam.Spec{}, fmt.Errorf("give either --file or six beam values, not both")
		}
		return beam.LoadFromFile(file)
	}
	if len(args) != 6 {
		return beam.Spec{}, fmt.Errorf("expected 6 beam values (web height, web thickness, flange width, flange thickness, web material, flange material), got %d", len(args))
	}
	return beam.ParseSpec(args)
}

// Search flags shared by analyze and batch
var (
	searchLoadMax    int
	searchMethod     string
	searchConcurrent bool
)

func addSearchFlags(c *cobra.Command) {
	c.Flags().IntVar(&searchLoadMax, "load-max", 0, "Upper bound of the load search in lbf (default 5000000 or GOWIB_LOAD_MAX)")
	c.Flags().StringVar(&searchMethod, "method", "", "Search method: sweep or bisect (default bisect or GOWIB_METHOD)")
	c.Flags().BoolVar(&searchConcurrent, "concurrent", false, "Run the bending and shear searches in parallel")
}

// searchOptions applies explicitly set flags over the configured defaults.
func searchOptions(c *cobra.Command) (failure.Options, error) {
	opts := cfg.SearchOptions()
	if c.Flags().Changed("load-max") {
		if searchLoadMax <= 0 {
			return opts, fmt.Errorf("--load-max must be positive, got %d", searchLoadMax)
		}
		opts.LoadMax = searchLoadMax
	}
	if c.Flags().Changed("method") {
		m, err := failure.ParseMethod(searchMethod)
		if err != nil {
			return opts, err
		}
		opts.Method = m
	}
	opts.Concurrent = searchConcurrent
	return opts, nil
}
