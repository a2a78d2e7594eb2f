package perturb

import (
	"fmt"
	"math"
)

// Molecule holds the coarse-grained Mie parameterization of one fluid.
// Immutable after construction; shared read-only across evaluations.
type Molecule struct {
	SegmentDiameter    float64 // σ, Å
	PotentialDepth     float64 // ε/kB, K
	RepulsiveExponent  float64 // λr
	AttractiveExponent float64 // λa
	Segments           float64 // ms, segments per chain
	MolarMass          float64 // g/mol
}

// NewMolecule validates the parameters once, before any state point is
// touched. λr must strictly exceed λa and all magnitudes must be
// positive; ms must be at least one.
func NewMolecule(segmentDiameter, potentialDepth, repulsiveExponent, attractiveExponent, segments, molarMass float64) (Molecule, error) {
	m := Molecule{
		SegmentDiameter:    segmentDiameter,
		PotentialDepth:     potentialDepth,
		RepulsiveExponent:  repulsiveExponent,
		AttractiveExponent: attractiveExponent,
		Segments:           segments,
		MolarMass:          molarMass,
	}
	if repulsiveExponent <= attractiveExponent {
		return Molecule{}, fmt.Errorf("%w: λr=%g must exceed λa=%g", ErrInvalidParameter, repulsiveExponent, attractiveExponent)
	}
	if attractiveExponent <= 0 {
		return Molecule{}, fmt.Errorf("%w: λa=%g must be positive", ErrInvalidParameter, attractiveExponent)
	}
	if segmentDiameter <= 0 {
		return Molecule{}, fmt.Errorf("%w: segment diameter %g Å", ErrInvalidParameter, segmentDiameter)
	}
	if potentialDepth <= 0 {
		return Molecule{}, fmt.Errorf("%w: potential depth %g K", ErrInvalidParameter, potentialDepth)
	}
	if segments < 1 {
		return Molecule{}, fmt.Errorf("%w: segments per chain %g", ErrInvalidParameter, segments)
	}
	if molarMass <= 0 {
		return Molecule{}, fmt.Errorf("%w: molar mass %g g/mol", ErrInvalidParameter, molarMass)
	}
	return m, nil
}

// StatePoint is one thermodynamic condition to evaluate.
type StatePoint struct {
	Temperature float64 // K
	Density     float64 // kg/m³
}

// Validate rejects T ≤ 0 or ρ < 0.
func (p StatePoint) Validate() error {
	if p.Temperature <= 0 || math.IsNaN(p.Temperature) {
		return fmt.Errorf("%w: temperature %g K", ErrInvalidStatePoint, p.Temperature)
	}
	if p.Density < 0 || math.IsNaN(p.Density) {
		return fmt.Errorf("%w: density %g kg/m³", ErrInvalidStatePoint, p.Density)
	}
	return nil
}

// Result carries both perturbation terms for one state point. A1 is in
// J per chain; A2 carries one extra factor of ε·kB per the expansion
// order. Eta is the packing fraction the point evaluated at, and
// NearClosePacking flags results beyond the physical close-packing
// boundary (computed anyway, reported with a caveat).
type Result struct {
	Point            StatePoint
	A1               float64
	A2               float64
	Eta              float64
	NearClosePacking bool
}
