package analysis

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"

	"Girder/internal/diagram"
	"Girder/internal/statics"
)

// Input is the calc request body. Span and Points are optional: a zero
// span is derived from the load extents, zero points uses the default
// resolution.
type Input struct {
	Loads  []LoadInput `json:"loads"`
	SpanM  float64     `json:"span_m"`
	Points int         `json:"points"`
}

// Peak is a signed extremum and where it occurs.
type Peak struct {
	Value    float64 `json:"value"`
	Position float64 `json:"position"`
}

// Output carries reactions (rounded for display), extrema and both
// diagrams as base64 PNG.
type Output struct {
	Ra        float64 `json:"ra"`
	Rb        float64 `json:"rb"`
	SpanM     float64 `json:"span_m"`
	MaxShear  Peak    `json:"max_shear"`
	MaxMoment Peak    `json:"max_moment"`
	SFD       string  `json:"sfd"`
	BMD       string  `json:"bmd"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	loads, err := ParseLoads(input.Loads)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	span := input.SpanM
	if span <= 0 {
		span = DeriveSpan(loads, DefaultSpanFloor)
	}

	res, err := Run(statics.BeamModel{Span: span, Loads: loads}, input.Points)
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

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{
		Ra:    round2(res.Reactions.RA),
		Rb:    round2(res.Reactions.RB),
		SpanM: res.Span,
		MaxShear: Peak{
			Value:    res.Extrema.ShearMax,
			Position: res.Extrema.ShearMaxPos,
		},
		MaxMoment: Peak{
			Value:    res.Extrema.MomentMax,
			Position: res.Extrema.MomentMaxPos,
		},
		SFD: base64.StdEncoding.EncodeToString(sfd),
		BMD: base64.StdEncoding.EncodeToString(bmd),
	})
}

// round2 rounds reactions for the response body only; the engine result
// itself is never rounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
