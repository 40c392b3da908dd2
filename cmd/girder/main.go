// girder is the batch companion to the web service: it reads a load
// schedule from a workbook and produces console summaries, diagram
// images and PDF reports without a running server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "girder",
	Short: "Simply supported beam analysis",
	Long: `girder - simply supported beam analysis

Computes support reactions, shear force and bending moment
distributions for a simply supported beam under point loads and
uniformly distributed loads (kN / m units throughout).

Commands:
  analyze   Read a load schedule and print the analysis
  report    Read a load schedule and write a PDF report
  sample    Write an example input workbook`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
