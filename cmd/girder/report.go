package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/ingest"
	"Girder/internal/report"
	"Girder/internal/statics"
)

var (
	reportInput      string
	reportOutput     string
	reportSpan       float64
	reportPoints     int
	reportTitle      string
	reportProject    string
	reportAuthor     string
	reportNotes      string
	reportKeepImages bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF report from a workbook load schedule",
	Long: `Read a load schedule from an Excel workbook, run the analysis and
write a PDF report with the input table, reactions, extrema and the
shear force and bending moment diagrams.

Examples:
  girder report --input loads.xlsx --output report.pdf
  girder report -i loads.xlsx -o beam.pdf --title "Warehouse girder" --keep-images`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Input workbook (xlsx) [required]")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.pdf", "Output PDF path")
	reportCmd.Flags().Float64VarP(&reportSpan, "span", "s", 0, "Beam span in m (default: derived from loads)")
	reportCmd.Flags().IntVarP(&reportPoints, "points", "n", analysis.DefaultPoints, "Diagram resolution")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Report author")
	reportCmd.Flags().StringVar(&reportNotes, "notes", "", "Free-form notes for the title page")
	reportCmd.Flags().BoolVar(&reportKeepImages, "keep-images", false, "Also write sfd.png and bmd.png beside the PDF")

	reportCmd.MarkFlagRequired("input")
}

func runReport(cmd *cobra.Command, args []string) error {
	loads, table, err := ingest.ReadLoadsFile(reportInput)
	if err != nil {
		return err
	}

	span := reportSpan
	if span <= 0 {
		span = analysis.DeriveSpan(loads, analysis.DefaultSpanFloor)
	}

	res, err := analysis.Run(statics.BeamModel{Span: span, Loads: loads}, reportPoints)
	if err != nil {
		return err
	}

	sfd, err := diagram.RenderProfile(res.Profile, diagram.Shear)
	if err != nil {
		return err
	}
	bmd, err := diagram.RenderProfile(res.Profile, diagram.Moment)
	if err != nil {
		return err
	}

	if reportKeepImages {
		dir := filepath.Dir(reportOutput)
		if err := diagram.SaveProfile(res.Profile, diagram.Shear, filepath.Join(dir, "sfd.png")); err != nil {
			return err
		}
		if err := diagram.SaveProfile(res.Profile, diagram.Moment, filepath.Join(dir, "bmd.png")); err != nil {
			return err
		}
	}

	meta := report.Meta{
		Title:   reportTitle,
		Project: reportProject,
		Author:  reportAuthor,
		Notes:   reportNotes,
	}
	pdf := report.Build(meta, table.Headers, table.Rows, res, sfd, bmd)
	if err := pdf.OutputFileAndClose(reportOutput); err != nil {
		return fmt.Errorf("write %s: %w", reportOutput, err)
	}

	fmt.Printf("Report written to %s (Ra=%.2f kN, Rb=%.2f kN)\n", reportOutput, res.Reactions.RA, res.Reactions.RB)
	return nil
}
