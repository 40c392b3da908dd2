// Package report assembles the full analysis report as a PDF: title
// block, input load table, reactions and extrema, and the two diagram
// figures.
package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"Girder/internal/analysis"
	"Girder/internal/statics"
)

// Meta is the report front matter.
type Meta struct {
	Title   string `json:"title"`
	Project string `json:"project"`
	Author  string `json:"author"`
	Notes   string `json:"notes"`
}

// Build lays out the report. headers/rows reproduce the input load
// schedule; sfd and bmd are PNG-encoded diagrams.
func Build(meta Meta, headers []string, rows [][]string, res analysis.Result, sfd, bmd []byte) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = "Simply Supported Beam Analysis"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if meta.Notes != "" {
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
		pdf.Ln(4)
	}

	// Input loads
	sectionTitle(pdf, "Input Loads")
	loadTable(pdf, headers, rows)
	pdf.Ln(6)

	// Results
	sectionTitle(pdf, "Analysis Results")
	pdf.SetFont("Helvetica", "", 11)
	results := []string{
		fmt.Sprintf("Beam span: %.2f m", res.Span),
		fmt.Sprintf("Left support reaction Ra: %.2f kN", res.Reactions.RA),
		fmt.Sprintf("Right support reaction Rb: %.2f kN", res.Reactions.RB),
		fmt.Sprintf("Maximum shear: %.2f kN at x = %.2f m", res.Extrema.ShearMax, res.Extrema.ShearMaxPos),
		fmt.Sprintf("Maximum moment: %.2f kNm at x = %.2f m", res.Extrema.MomentMax, res.Extrema.MomentMaxPos),
	}
	for _, line := range results {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	// Diagrams, one per figure with a caption.
	pdf.AddPage()
	figure(pdf, "sfd", sfd, "Figure 1: Shear Force Diagram")
	figure(pdf, "bmd", bmd, "Figure 2: Bending Moment Diagram")

	return pdf
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func loadTable(pdf *gofpdf.Fpdf, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	colWidth := 180.0 / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i := 0; i < len(headers); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func figure(pdf *gofpdf.Fpdf, name string, png []byte, caption string) {
	if len(png) == 0 {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, 15, pdf.GetY(), 180, 0, true, opts, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, caption, "", 0, "C", false, 0, "")
	pdf.Ln(12)
}

// LoadRows formats engine loads as a table in the canonical spreadsheet
// layout, for callers that submitted loads as JSON rather than a
// workbook.
func LoadRows(loads []statics.Load) ([]string, [][]string) {
	headers := []string{"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)"}
	rows := make([][]string, 0, len(loads))
	for _, l := range loads {
		switch load := l.(type) {
		case statics.PointLoad:
			rows = append(rows, []string{"Point", trimFloat(load.Magnitude), trimFloat(load.Position), "", ""})
		case statics.DistributedLoad:
			rows = append(rows, []string{"UDL", trimFloat(load.Intensity), "", trimFloat(load.Start), trimFloat(load.End)})
		}
	}
	return headers, rows
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
