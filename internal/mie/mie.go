package mie

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for potential construction.
var (
	// ErrExponentOrder indicates λr ≤ λa; the Mie prefactor is undefined.
	ErrExponentOrder = errors.New("mie: repulsive exponent must exceed attractive exponent")

	// ErrParameterBounds indicates a non-positive diameter or well depth.
	ErrParameterBounds = errors.New("mie: parameter out of valid bounds")
)

// Potential is a Mie pair potential
//
//	u(r) = C·ε·[ (σ/r)^λr − (σ/r)^λa ]
//
// with the segment diameter σ in Å and the well depth ε in K (ε/kB).
// The normalization prefactor C and the van der Waals attraction
// parameter α depend only on the exponent pair and are computed once.
type Potential struct {
	AttractiveExponent float64
	RepulsiveExponent  float64
	SegmentDiameter    float64
	PotentialDepth     float64

	c     float64
	alpha float64
}

// New validates the parameters and precomputes the exponent constants.
func New(attractiveExponent, repulsiveExponent, segmentDiameter, potentialDepth float64) (*Potential, error) {
	if repulsiveExponent <= attractiveExponent || attractiveExponent <= 0 {
		return nil, fmt.Errorf("%w: λr=%g λa=%g", ErrExponentOrder, repulsiveExponent, attractiveExponent)
	}
	if segmentDiameter <= 0 {
		return nil, fmt.Errorf("%w: segment diameter %g", ErrParameterBounds, segmentDiameter)
	}
	if potentialDepth <= 0 {
		return nil, fmt.Errorf("%w: potential depth %g", ErrParameterBounds, potentialDepth)
	}

	p := &Potential{
		AttractiveExponent: attractiveExponent,
		RepulsiveExponent:  repulsiveExponent,
		SegmentDiameter:    segmentDiameter,
		PotentialDepth:     potentialDepth,
	}
	p.c = Prefactor(repulsiveExponent, attractiveExponent)
	p.alpha = p.c * (1/(attractiveExponent-3) - 1/(repulsiveExponent-3))
	return p, nil
}

// Prefactor returns the Mie normalization constant
// C = λr/(λr−λa) · (λr/λa)^(λa/(λr−λa)).
func Prefactor(repulsive, attractive float64) float64 {
	return repulsive / (repulsive - attractive) *
		math.Pow(repulsive/attractive, attractive/(repulsive-attractive))
}

// C returns the normalization prefactor.
func (p *Potential) C() float64 { return p.c }

// Alpha returns the dimensionless van der Waals attraction parameter
// α = C·(1/(λa−3) − 1/(λr−3)).
func (p *Potential) Alpha() float64 { return p.alpha }

// Energy returns u(r)/kB in K at separation r (Å). Diverges as r → 0.
func (p *Potential) Energy(r float64) float64 {
	sr := p.SegmentDiameter / r
	return p.c * p.PotentialDepth *
		(math.Pow(sr, p.RepulsiveExponent) - math.Pow(sr, p.AttractiveExponent))
}
