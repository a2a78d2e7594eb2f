// Package perturb evaluates the first- and second-order perturbation
// terms of the SAFT-VR Mie expansion for a coarse-grained chain fluid.
// Every evaluation is a pure function of the molecule parameters and
// one state point; the evaluator carries only immutable derived
// constants, so concurrent use is safe.
package perturb

import (
	"math"

	"github.com/san-kum/mievr/internal/hsref"
	"github.com/san-kum/mievr/internal/mie"
	"github.com/san-kum/mievr/internal/units"
)

// Evaluator holds the molecule together with every quantity that
// depends only on the exponent pair: the Mie prefactor, α, and the five
// Sutherland tails entering a1 and a2. Computed once, reused at every
// state point.
type Evaluator struct {
	mol Molecule
	pot *mie.Potential

	attr     *hsref.Sutherland // λa
	rep      *hsref.Sutherland // λr
	attr2    *hsref.Sutherland // 2λa
	rep2     *hsref.Sutherland // 2λr
	cross    *hsref.Sutherland // λa+λr
	c, alpha float64
}

// Derive validates the molecule and precomputes the shared constants.
func Derive(mol Molecule) (*Evaluator, error) {
	m, err := NewMolecule(mol.SegmentDiameter, mol.PotentialDepth,
		mol.RepulsiveExponent, mol.AttractiveExponent, mol.Segments, mol.MolarMass)
	if err != nil {
		return nil, err
	}
	pot, err := mie.New(m.AttractiveExponent, m.RepulsiveExponent, m.SegmentDiameter, m.PotentialDepth)
	if err != nil {
		return nil, err
	}

	la, lr, eps := m.AttractiveExponent, m.RepulsiveExponent, m.PotentialDepth
	return &Evaluator{
		mol:   m,
		pot:   pot,
		attr:  hsref.NewSutherland(la, eps),
		rep:   hsref.NewSutherland(lr, eps),
		attr2: hsref.NewSutherland(2*la, eps),
		rep2:  hsref.NewSutherland(2*lr, eps),
		cross: hsref.NewSutherland(la+lr, eps),
		c:     pot.C(),
		alpha: pot.Alpha(),
	}, nil
}

// Molecule returns the validated parameters the evaluator was derived from.
func (e *Evaluator) Molecule() Molecule { return e.mol }

// Evaluate computes both perturbation terms at one state point.
func (e *Evaluator) Evaluate(pt StatePoint) (Result, error) {
	if e.pot == nil {
		return Result{}, ErrNotDerived
	}
	if err := pt.Validate(); err != nil {
		return Result{}, err
	}

	rhos := units.SegmentDensity(pt.Density, e.mol.MolarMass, e.mol.Segments)
	eta := hsref.PackingFraction(rhos, e.mol.SegmentDiameter)
	x0 := e.pot.ReducedDiameter(pt.Temperature)

	a1, a2 := e.reduced(eta, x0)
	return Result{
		Point:            pt,
		A1:               e.mol.Segments * a1,
		A2:               e.mol.Segments * a2,
		Eta:              eta,
		NearClosePacking: eta >= hsref.ClosePackingEta,
	}, nil
}

// reduced evaluates both terms per segment at a given packing fraction
// and reduced diameter. Exposed through EvaluateAt for tests and the
// live viewer; the ms scaling happens in the caller.
func (e *Evaluator) reduced(eta, x0 float64) (a1, a2 float64) {
	la, lr := e.mol.AttractiveExponent, e.mol.RepulsiveExponent

	a1 = e.c * (math.Pow(x0, la)*(e.attr.FirstOrder(eta)+e.correlationIntegral(la, eta, x0)) -
		math.Pow(x0, lr)*(e.rep.FirstOrder(eta)+e.correlationIntegral(lr, eta, x0)))

	khs := hsref.Compressibility(eta)
	chi := hsref.ChainCorrection(e.alpha, eta, x0)
	a2 = 0.5 * khs * (1 + chi) * e.mol.PotentialDepth * units.Boltzmann * e.c * e.c *
		(math.Pow(x0, 2*la)*(e.attr2.FirstOrder(eta)+e.correlationIntegral(2*la, eta, x0)) -
			2*math.Pow(x0, la+lr)*(e.cross.FirstOrder(eta)+e.correlationIntegral(la+lr, eta, x0)) +
			math.Pow(x0, 2*lr)*(e.rep2.FirstOrder(eta)+e.correlationIntegral(2*lr, eta, x0)))
	return a1, a2
}

// EvaluateAt computes per-segment a1, a2 directly from the reduced
// inputs (η, x0), bypassing the density and diameter conversions.
func (e *Evaluator) EvaluateAt(eta, x0 float64) (a1, a2 float64) {
	return e.reduced(eta, x0)
}

// correlationIntegral is the shell contribution B(λ; η, x0) between the
// effective diameter and σ, in J per segment:
//
//	B = 12·ε·kB·η·[ I·(1−η/2)/(1−η)³ − J·9η(1+η)/(2(1−η)³) ]
//
// with the analytic integrals I and J of r^−λ over [d, σ]. The leading
// η keeps the term exactly zero at zero density.
func (e *Evaluator) correlationIntegral(lambda, eta, x0 float64) float64 {
	i := -(math.Pow(x0, 3-lambda) - 1) / (lambda - 3)
	j := -(math.Pow(x0, 4-lambda)*(lambda-3) - math.Pow(x0, 3-lambda)*(lambda-4) - 1) /
		((lambda - 3) * (lambda - 4))

	om := 1 - eta
	om3 := om * om * om
	return 12 * eta * e.mol.PotentialDepth * units.Boltzmann *
		(i*(1-eta/2)/om3 - j*(9*eta*(1+eta))/(2*om3))
}
