// Package analysis runs a complete beam analysis: span derivation,
// reaction solving, internal-force sampling and extremum extraction.
package analysis

import (
	"fmt"
	"strings"

	"Girder/internal/statics"
)

const (
	// DefaultSpanFloor keeps derived spans from collapsing when all
	// loads sit near the left support.
	DefaultSpanFloor = 10.0 // m
	// DefaultPoints is the diagram resolution.
	DefaultPoints = 500
)

// Result is everything one analysis run produces.
type Result struct {
	Span      float64
	Reactions statics.Reactions
	Profile   statics.ForceProfile
	Extrema   statics.Extrema
}

// DeriveSpan returns the furthest load extent, floored so a near-empty
// load set still yields a workable beam. A non-positive floor falls back
// to the default.
func DeriveSpan(loads []statics.Load, floor float64) float64 {
	if floor <= 0 {
		floor = DefaultSpanFloor
	}
	span := floor
	for _, l := range loads {
		if e := l.Extent(); e > span {
			span = e
		}
	}
	return span
}

// Run executes the full pipeline over a validated model. A non-positive
// points count uses the default resolution.
func Run(model statics.BeamModel, points int) (Result, error) {
	if points <= 0 {
		points = DefaultPoints
	}

	reactions, err := statics.SolveReactions(model.Loads, model.Span)
	if err != nil {
		return Result{}, err
	}
	profile, err := statics.Sample(model.Loads, reactions.RA, model.Span, points)
	if err != nil {
		return Result{}, err
	}
	extrema, err := statics.FindExtrema(profile)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Span:      model.Span,
		Reactions: reactions,
		Profile:   profile,
		Extrema:   extrema,
	}, nil
}

// LoadInput is the wire form of a load. Type is matched loosely, the
// same way the spreadsheet path matches it: anything containing "point"
// is a point load, anything containing "udl" a distributed load.
type LoadInput struct {
	Type      string  `json:"type"`
	Magnitude float64 `json:"magnitude"`
	Position  float64 `json:"position"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

// ParseLoads converts wire loads into engine loads. Unlike the
// spreadsheet reader this rejects unknown types: a JSON caller spelled
// the type out and silence would hide their mistake.
func ParseLoads(inputs []LoadInput) ([]statics.Load, error) {
	loads := make([]statics.Load, 0, len(inputs))
	for i, in := range inputs {
		kind := strings.ToLower(in.Type)
		switch {
		case strings.Contains(kind, "point"):
			loads = append(loads, statics.PointLoad{Magnitude: in.Magnitude, Position: in.Position})
		case strings.Contains(kind, "udl"):
			loads = append(loads, statics.DistributedLoad{Intensity: in.Magnitude, Start: in.Start, End: in.End})
		default:
			return nil, fmt.Errorf("%w: load %d has unknown type %q", statics.ErrInvalidModel, i, in.Type)
		}
	}
	return loads, nil
}
