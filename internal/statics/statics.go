// Package statics computes support reactions and internal force
// distributions for a simply supported beam under point loads and
// uniformly distributed loads.
//
// Sign conventions: applied loads act downward and are positive;
// reactions are reported positive upward. Shear and moment follow the
// usual left-cut convention, so a beam with a single midspan point load
// has positive shear on the left half and a positive moment peak under
// the load.
package statics

import (
	"fmt"
	"math"
)

// SolveReactions solves global equilibrium for the two support
// reactions. Moment equilibrium about the left support gives RB, vertical
// equilibrium gives RA. Distributed loads are reduced to their resultant
// at the centroid, so the result is exact. An empty load list yields zero
// reactions.
func SolveReactions(loads []Load, span float64) (Reactions, error) {
	model := BeamModel{Span: span, Loads: loads}
	if err := model.Validate(); err != nil {
		return Reactions{}, err
	}

	var momentSum, totalLoad float64
	for _, l := range loads {
		force, centroid := l.Resultant()
		momentSum += force * centroid
		totalLoad += force
	}

	rb := momentSum / span
	return Reactions{RA: totalLoad - rb, RB: rb}, nil
}

// Sample evaluates shear and moment at numPoints evenly spaced cuts over
// [0, span], both endpoints included. Each cut superposes the left
// reaction with every load strictly to the left of it:
//
//	V(x) = ra - sum(loads left of x)
//	M(x) = ra*x - sum(load moments about x)
//
// A point load exactly at a cut is excluded there, so the profile is the
// left-continuous step function at load positions. A distributed load is
// integrated only over its overlap with [0, x].
func Sample(loads []Load, ra, span float64, numPoints int) (ForceProfile, error) {
	if span <= 0 {
		return ForceProfile{}, fmt.Errorf("%w: span must be positive, got %g m", ErrInvalidModel, span)
	}
	if numPoints < 2 {
		return ForceProfile{}, fmt.Errorf("%w: need at least 2 sample points, got %d", ErrInvalidModel, numPoints)
	}

	profile := ForceProfile{
		Positions: make([]float64, numPoints),
		Shear:     make([]float64, numPoints),
		Moment:    make([]float64, numPoints),
	}

	step := span / float64(numPoints-1)
	for i := 0; i < numPoints; i++ {
		x := float64(i) * step
		if i == numPoints-1 {
			x = span
		}

		v := ra
		m := ra * x
		for _, l := range loads {
			switch load := l.(type) {
			case PointLoad:
				if x > load.Position {
					v -= load.Magnitude
					m -= load.Magnitude * (x - load.Position)
				}
			case DistributedLoad:
				if x > load.Start {
					end := math.Min(x, load.End)
					length := end - load.Start
					force := load.Intensity * length
					centroid := load.Start + length/2
					v -= force
					m -= force * (x - centroid)
				}
			}
		}

		profile.Positions[i] = x
		profile.Shear[i] = v
		profile.Moment[i] = m
	}

	return profile, nil
}

// FindExtrema picks the sample with the largest absolute shear and,
// independently, the largest absolute moment, returning the signed values
// and their positions. Ties resolve to the first occurrence in position
// order.
func FindExtrema(profile ForceProfile) (Extrema, error) {
	if len(profile.Positions) == 0 {
		return Extrema{}, fmt.Errorf("%w: empty force profile", ErrInvalidModel)
	}

	ex := Extrema{
		ShearMax:     profile.Shear[0],
		ShearMaxPos:  profile.Positions[0],
		MomentMax:    profile.Moment[0],
		MomentMaxPos: profile.Positions[0],
	}
	for i := 1; i < len(profile.Positions); i++ {
		if math.Abs(profile.Shear[i]) > math.Abs(ex.ShearMax) {
			ex.ShearMax = profile.Shear[i]
			ex.ShearMaxPos = profile.Positions[i]
		}
		if math.Abs(profile.Moment[i]) > math.Abs(ex.MomentMax) {
			ex.MomentMax = profile.Moment[i]
			ex.MomentMaxPos = profile.Positions[i]
		}
	}
	return ex, nil
}
