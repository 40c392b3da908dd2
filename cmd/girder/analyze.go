package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/ingest"
	"Girder/internal/statics"
)

var (
	analyzeInput  string
	analyzeSpan   float64
	analyzePoints int
	analyzeASCII  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a beam from a workbook load schedule",
	Long: `Read a load schedule from an Excel workbook, solve the support
reactions and print the shear and moment extrema.

The span is taken from --span when given, otherwise derived from the
furthest load extent with a 10 m floor.

Examples:
  girder analyze --input loads.xlsx
  girder analyze --input loads.xlsx --span 12 --ascii`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Input workbook (xlsx) [required]")
	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "s", 0, "Beam span in m (default: derived from loads)")
	analyzeCmd.Flags().IntVarP(&analyzePoints, "points", "n", analysis.DefaultPoints, "Diagram resolution")
	analyzeCmd.Flags().BoolVar(&analyzeASCII, "ascii", false, "Draw ASCII shear and moment diagrams")

	analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	res, loads, err := analyzeWorkbook()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY SUPPORTED BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam span:\t%.2f m\n", res.Span)
	for _, l := range loads {
		switch load := l.(type) {
		case statics.PointLoad:
			fmt.Fprintf(w, "  Point load:\t%.2f kN at %.2f m\n", load.Magnitude, load.Position)
		case statics.DistributedLoad:
			fmt.Fprintf(w, "  UDL:\t%.2f kN/m over [%.2f, %.2f] m\n", load.Intensity, load.Start, load.End)
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ra (left support):\t%.2f kN\n", res.Reactions.RA)
	fmt.Fprintf(w, "  Rb (right support):\t%.2f kN\n", res.Reactions.RB)
	w.Flush()
	fmt.Println()

	fmt.Println("EXTREMA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max shear:\t%.2f kN\tat x = %.2f m\n", res.Extrema.ShearMax, res.Extrema.ShearMaxPos)
	fmt.Fprintf(w, "  Max moment:\t%.2f kNm\tat x = %.2f m\n", res.Extrema.MomentMax, res.Extrema.MomentMaxPos)
	w.Flush()
	fmt.Println()

	if analyzeASCII {
		fmt.Println(diagram.Sketch(res.Profile, diagram.Shear, 12))
		fmt.Println()
		fmt.Println(diagram.Sketch(res.Profile, diagram.Moment, 12))
		fmt.Println()
	}

	return nil
}

// analyzeWorkbook is the shared CLI pipeline: read, derive span, run.
func analyzeWorkbook() (analysis.Result, []statics.Load, error) {
	loads, _, err := ingest.ReadLoadsFile(analyzeInput)
	if err != nil {
		return analysis.Result{}, nil, err
	}

	span := analyzeSpan
	if span <= 0 {
		span = analysis.DeriveSpan(loads, analysis.DefaultSpanFloor)
	}

	res, err := analysis.Run(statics.BeamModel{Span: span, Loads: loads}, analyzePoints)
	if err != nil {
		return analysis.Result{}, nil, err
	}
	return res, loads, nil
}
