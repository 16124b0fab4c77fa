package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
)

// DrawASCIISection draws the I-section to scale, one character per
// 1/16 in horizontally and 1/8 in vertically.
func DrawASCIISection(s beam.Spec) string {
	var sb strings.Builder

	const colsPerIn = 16.0
	const rowsPerIn = 8.0

	flangeCols := cells(s.FlangeWidth, colsPerIn)
	webCols := cells(s.WebThickness, colsPerIn)
	if webCols > flangeCols {
		webCols = flangeCols
	}
	flangeRows := cells(s.FlangeThickness, rowsPerIn)
	webRows := cells(s.WebHeight, rowsPerIn)
	pad := (flangeCols - webCols) / 2

	flangeLine := "  " + strings.Repeat("█", flangeCols)
	webLine := "  " + strings.Repeat(" ", pad) + strings.Repeat("▓", webCols) + strings.Repeat(" ", flangeCols-pad-webCols)

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION\n")
	sb.WriteString("  ────────────\n")
	for i := 0; i < flangeRows; i++ {
		sb.WriteString(flangeLine)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("   ◄─ flange %.4f x %.4f in (%s)", s.FlangeWidth, s.FlangeThickness, s.FlangeMaterial))
		}
		sb.WriteString("\n")
	}
	for i := 0; i < webRows; i++ {
		sb.WriteString(webLine)
		switch i {
		case 0:
			sb.WriteString("   ◄─ glue line")
		case webRows / 2:
			sb.WriteString(fmt.Sprintf("   ◄─ web %.4f x %.4f in (%s)", s.WebThickness, s.WebHeight, s.WebMaterial))
		}
		sb.WriteString("\n")
	}
	for i := 0; i < flangeRows; i++ {
		sb.WriteString(flangeLine)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\n  Overall: %.4f in deep x %.4f in wide\n", s.Height(), s.FlangeWidth))

	return sb.String()
}

func cells(length, perIn float64) int {
	n := int(math.Round(length * perIn))
	if n < 1 {
		return 1
	}
	return n
}

// Utilization samples stress/strength (%) of every failure mode at n evenly
// spaced loads from 0 to maxLoad. Series are returned in failure.Modes order.
func Utilization(e failure.Evaluator, maxLoad float64, n int) [][]float64 {
	series := make([][]float64, len(failure.Modes))
	for i, m := range failure.Modes {
		strength, stress := e.Strength(m)
		series[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			load := maxLoad * float64(j) / float64(n-1)
			series[i][j] = 100 * stress(load) / strength
		}
	}
	return series
}

// StressChart plots the utilization of every failure mode up to the highest
// failure load of the report.
func StressChart(e failure.Evaluator, maxLoad float64) string {
	const points = 60
	if maxLoad <= 0 {
		return ""
	}
	series := Utilization(e, maxLoad, points)

	var legend []string
	for _, m := range failure.Modes {
		legend = append(legend, m.String())
	}

	chart := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(points),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue, asciigraph.Green, asciigraph.Yellow, asciigraph.Magenta),
		asciigraph.SeriesLegends(legend...),
		asciigraph.Caption(fmt.Sprintf("stress / strength (%%) for loads 0 to %.0f lbf", maxLoad)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  UTILIZATION vs LOAD\n")
	sb.WriteString("  ───────────────────\n\n")
	sb.WriteString(chart)
	sb.WriteString("\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
