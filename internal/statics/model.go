package statics

import (
	"errors"
	"fmt"
)

// ErrInvalidModel is wrapped by every validation failure in this package.
// Callers decide how to surface it (bad spreadsheet row, 400 response, ...).
var ErrInvalidModel = errors.New("invalid model")

// Load is an external action on the beam, downward positive. The two
// implementations are PointLoad and DistributedLoad; loads are immutable
// once constructed.
type Load interface {
	// Resultant returns the total downward force (kN) and the position of
	// its line of action (m from the left support).
	Resultant() (force, centroid float64)
	// Extent returns the furthest position (m) the load touches.
	Extent() float64

	validate(span float64) error
}

// PointLoad is a concentrated force.
type PointLoad struct {
	Magnitude float64 // kN
	Position  float64 // m from the left support
}

func (p PointLoad) Resultant() (float64, float64) { return p.Magnitude, p.Position }

func (p PointLoad) Extent() float64 { return p.Position }

func (p PointLoad) validate(span float64) error {
	if p.Position < 0 || p.Position > span {
		return fmt.Errorf("%w: point load at %g m lies outside [0, %g]", ErrInvalidModel, p.Position, span)
	}
	return nil
}

// DistributedLoad is a uniform load over [Start, End].
type DistributedLoad struct {
	Intensity float64 // kN/m
	Start     float64 // m
	End       float64 // m, must exceed Start
}

func (d DistributedLoad) Resultant() (float64, float64) {
	length := d.End - d.Start
	return d.Intensity * length, d.Start + length/2
}

func (d DistributedLoad) Extent() float64 { return d.End }

func (d DistributedLoad) validate(span float64) error {
	if d.Start >= d.End {
		return fmt.Errorf("%w: distributed load start %g m must precede end %g m", ErrInvalidModel, d.Start, d.End)
	}
	if d.Start < 0 || d.End > span {
		return fmt.Errorf("%w: distributed load [%g, %g] m lies outside [0, %g]", ErrInvalidModel, d.Start, d.End, span)
	}
	return nil
}

// BeamModel is a simply supported beam with its applied loads.
type BeamModel struct {
	Span  float64 // m, supports at 0 and Span
	Loads []Load
}

// Validate checks the span and every load against it.
func (b BeamModel) Validate() error {
	if b.Span <= 0 {
		return fmt.Errorf("%w: span must be positive, got %g m", ErrInvalidModel, b.Span)
	}
	for _, l := range b.Loads {
		if err := l.validate(b.Span); err != nil {
			return err
		}
	}
	return nil
}

// Reactions holds the vertical support reactions, positive upward.
type Reactions struct {
	RA float64 // kN, at x = 0
	RB float64 // kN, at x = span
}

// ForceProfile holds sampled internal forces. Positions is strictly
// increasing from 0 to the span; Shear[i] and Moment[i] belong to
// Positions[i].
type ForceProfile struct {
	Positions []float64 // m
	Shear     []float64 // kN
	Moment    []float64 // kNm
}

// Extrema are the absolute-maximum sampled values, reported signed.
type Extrema struct {
	ShearMax     float64 // kN
	ShearMaxPos  float64 // m
	MomentMax    float64 // kNm
	MomentMaxPos float64 // m
}
