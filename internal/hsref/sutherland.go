package hsref

import (
	"github.com/san-kum/mievr/internal/units"
)

// etaEffFit maps (1, 1/λ, 1/λ², 1/λ³) onto the four effective
// packing-fraction coefficients c1..c4.
var etaEffFit = [4][4]float64{
	{0.81096, 1.7888, -37.578, 92.284},
	{1.0505, -19.341, 151.26, -465.50},
	{-1.9057, 22.845, -228.14, 973.92},
	{1.0885, -6.1962, 106.98, -677.64},
}

// Sutherland is a single inverse-power attractive tail u(r) = −ε(σ/r)^λ
// over the hard-sphere reference. The perturbation expansion evaluates
// it at λa, λr and their pairwise sums for the second-order term.
type Sutherland struct {
	Exponent       float64
	PotentialDepth float64 // K

	// c1..c4 of the effective packing fraction, fixed per exponent.
	coeffs [4]float64
}

// NewSutherland precomputes the exponent-dependent coefficients; they
// are reused across every state point.
func NewSutherland(exponent, potentialDepth float64) *Sutherland {
	s := &Sutherland{Exponent: exponent, PotentialDepth: potentialDepth}
	lam := [4]float64{1, 1 / exponent, 1 / (exponent * exponent), 1 / (exponent * exponent * exponent)}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s.coeffs[i] += etaEffFit[i][j] * lam[j]
		}
	}
	return s
}

// EffectivePacking returns ηeff(η) = c1·η + c2·η² + c3·η³ + c4·η⁴.
func (s *Sutherland) EffectivePacking(eta float64) float64 {
	return eta * (s.coeffs[0] + eta*(s.coeffs[1]+eta*(s.coeffs[2]+eta*s.coeffs[3])))
}

// FirstOrder returns the first-order Sutherland perturbation term in J
// per segment:
//
//	a1S = −12·ε·kB·η·(1/(λ−3))·(1 − ηeff/2)/(1 − ηeff)³
//
// The leading η makes the term exactly zero at zero density.
func (s *Sutherland) FirstOrder(eta float64) float64 {
	ee := s.EffectivePacking(eta)
	om := 1 - ee
	return -12 * s.PotentialDepth * units.Boltzmann * eta /
		(s.Exponent - 3) * (1 - ee/2) / (om * om * om)
}
