package report

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/ingest"
	"Girder/internal/statics"
)

// Input is the JSON report request: front matter plus the same load
// payload the calc endpoint accepts.
type Input struct {
	Meta
	Loads  []analysis.LoadInput `json:"loads"`
	SpanM  float64              `json:"span_m"`
	Points int                  `json:"points"`
}

type Handler struct{}

// Generate builds a PDF report from a JSON load list.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	loads, err := analysis.ParseLoads(input.Loads)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	headers, rows := LoadRows(loads)
	h.respond(w, input.Meta, headers, rows, loads, input.SpanM, input.Points)
}

// Import builds a PDF report from an uploaded workbook. Front matter
// fields ride along as multipart form values.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	loads, table, err := ingest.ReadLoads(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meta := Meta{
		Title:   r.FormValue("title"),
		Project: r.FormValue("project"),
		Author:  r.FormValue("author"),
		Notes:   r.FormValue("notes"),
	}
	h.respond(w, meta, table.Headers, table.Rows, loads, 0, 0)
}

func (h *Handler) respond(w http.ResponseWriter, meta Meta, headers []string, rows [][]string, loads []statics.Load, span float64, points int) {
	if span <= 0 {
		span = analysis.DeriveSpan(loads, analysis.DefaultSpanFloor)
	}

	res, err := analysis.Run(statics.BeamModel{Span: span, Loads: loads}, points)
	if err != nil {
		if errors.Is(err, statics.ErrInvalidModel) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}

	sfd, err := diagram.RenderProfile(res.Profile, diagram.Shear)
	if err != nil {
		log.Printf("SFD render error: %v", err)
		http.Error(w, "Diagram rendering error", http.StatusInternalServerError)
		return
	}
	bmd, err := diagram.RenderProfile(res.Profile, diagram.Moment)
	if err != nil {
		log.Printf("BMD render error: %v", err)
		http.Error(w, "Diagram rendering error", http.StatusInternalServerError)
		return
	}

	pdf := Build(meta, headers, rows, res, sfd, bmd)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		log.Printf("PDF output error: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
