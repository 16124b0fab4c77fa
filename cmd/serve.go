package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gowib/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr  string
	serveRate  float64
	serveBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the beam calculations as a JSON API",
	Long: `Start an HTTP server exposing the calculations:

  GET  /api/health
  GET  /api/materials
  POST /api/beam/check     beam JSON -> parameter check
  POST /api/beam/analyze   beam JSON (+ load_max, method) -> full result
  POST /api/beam/report    beam JSON -> PDF report

Calculation routes are rate limited per client address.

Examples:
  gowib serve --addr :8080
  curl -d '{"web_height":1.375,"web_thickness":0.25,"flange_width":1.0625,"flange_thickness":0.3125,"web_material":0,"flange_material":1}' localhost:8080/api/beam/analyze`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		c := cfg
		if cmd.Flags().Changed("addr") {
			c.Addr = serveAddr
		}
		if cmd.Flags().Changed("rate") {
			c.Rate = serveRate
		}
		if cmd.Flags().Changed("burst") {
			c.Burst = serveBurst
		}

		if c.Rate <= 0 || c.Burst <= 0 {
			return fmt.Errorf("rate and burst must be positive (rate %v, burst %d)", c.Rate, c.Burst)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return server.ListenAndServe(ctx, c)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080 or GOWIB_ADDR)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 0, "Requests per second per client (default 2 or GOWIB_RATE)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 0, "Request burst per client (default 5 or GOWIB_BURST)")
}
